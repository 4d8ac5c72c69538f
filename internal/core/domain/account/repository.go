package account

import (
	"context"
	"time"
)

type CreateAccountInput struct {
	Username     string
	Email        string
	Phone        string
	Salt         Salt
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// AttributeQuery is the conjunctive identity claim of the forgot-password
// flow: all three attributes must match a single account.
type AttributeQuery struct {
	Username string
	Email    string
	Phone    string
}

type AccountRepository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	GetByAttributes(ctx context.Context, query AttributeQuery) (Account, error)
	// UpdateCredential replaces the (salt, hash) pair of the account with the
	// given id. The update is conditional on the id still existing, so a
	// resolve-then-rotate sequence cannot mutate an account that vanished in
	// between; ErrAccountDoesNotExist is returned in that case.
	UpdateCredential(ctx context.Context, id ID, credential Credential) error
}
