package model

import (
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Handle         string    `json:"handle"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	HashedPassword string    `json:"-"` // Not exposed
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TokenPair is minted per login/registration and never persisted; tokens
// expire on their own and the server keeps no reference to them.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
