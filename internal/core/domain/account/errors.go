package account

import "errors"

var (
	ErrAccountDoesNotExist    = errors.New("account does not exist")
	ErrUsernameAlreadyExists  = errors.New("username already exists")
	ErrInvalidPassword        = errors.New("new password does not satisfy the password policy")
	ErrPasswordMismatch       = errors.New("new password and confirmation do not match")
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrInvalidPhone           = errors.New("invalid phone number")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrCredentialUpdateFailed = errors.New("could not update credential")
)
