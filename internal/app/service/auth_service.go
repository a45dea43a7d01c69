package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auth_api/internal/common"
	"auth_api/internal/common/security"
	"auth_api/internal/domain/model"
	"auth_api/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type AuthService struct {
	userRepo       repository.UserRepository
	tokens         *security.TokenManager
	hasher         *security.PasswordHasher
	validate       *validator.Validate
	passwordMinLen int
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager, hasher *security.PasswordHasher, passwordMinLen int) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokens:         tokens,
		hasher:         hasher,
		validate:       common.NewValidator(),
		passwordMinLen: passwordMinLen,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User *model.User `json:"user"`
	model.TokenPair
}

// Register validates the payload, creates the credential record and mints an
// initial token pair. A token failure after the insert leaves a valid user
// behind; the client recovers through a normal login, nothing is retried.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := s.validateRegister(req); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          normalizeEmail(req.Email),
		Username:       strings.TrimSpace(req.Username),
		Handle:         slug.Make(req.Username),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.tokens.IssueTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.HashedPassword = "" // Clear before returning
	return &RegisterResponse{User: user, TokenPair: *pair}, nil
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller: same error, and the
// unknown-email path still runs a bcrypt comparison against a dummy hash.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.TokenPair, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.VerifyDummy(req.Password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssueTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return pair, nil
}

// Refresh redeems a refresh token for a new pair. The user is re-fetched so a
// deleted account cannot keep minting access tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrInvalidToken
	}

	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	pair, err := s.tokens.IssueTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return pair, nil
}

func (s *AuthService) validateRegister(req RegisterRequest) error {
	verr := common.CollectValidationErrors(s.validate.Struct(req))
	if verr == nil {
		verr = common.NewValidationError()
	}
	if _, taken := verr.Fields["password"]; !taken && len(req.Password) < s.passwordMinLen {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", s.passwordMinLen))
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// Email case policy is fixed at creation: stored and compared lowercase.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
