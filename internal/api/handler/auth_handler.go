package handler

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	"auth_api/internal/app/service"
	"auth_api/internal/common"
	"auth_api/internal/platform/limiter"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService  *service.AuthService
	loginLimiter *limiter.LoginLimiter
}

func NewAuthHandler(authService *service.AuthService, loginLimiter *limiter.LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, loginLimiter: loginLimiter}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/refresh", h.refresh)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ip := clientIP(r)
	allowed, err := h.loginLimiter.Allow(r.Context(), req.Email, ip)
	if err != nil {
		log.Printf("WARN: %v", err) // fail open, redis being down must not lock out logins
	}
	if !allowed {
		common.RespondWithDomainError(w, common.ErrTooManyRequests)
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	if err := h.loginLimiter.Reset(r.Context(), req.Email, ip); err != nil {
		log.Printf("WARN: login limiter reset: %v", err)
	}
	common.RespondWithJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, pair)
}

// clientIP trusts RemoteAddr; the RealIP middleware has already rewritten it
// from X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
