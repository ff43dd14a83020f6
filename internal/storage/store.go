package storage

import (
	"context"
	"errors"

	"portfoliomaker/internal/models"
)

var (
	ErrDuplicateUser = errors.New("username already exists")
	ErrNotFound      = errors.New("user not found")
)

// UserStore persists accounts and their portfolio data.
type UserStore interface {
	// Insert writes a new account. Returns ErrDuplicateUser when the
	// username is already taken.
	Insert(ctx context.Context, user models.UserAccount) error

	// FindByUsername returns the account or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (models.UserAccount, error)

	// UpdatePortfolio overwrites the stored portfolio data for the user.
	// Returns ErrNotFound when no such account exists.
	UpdatePortfolio(ctx context.Context, username string, profile models.ProfileRecord) error
}
