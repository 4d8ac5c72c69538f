package account

import (
	"time"
)

type ID int64

// RawPassword is a plaintext password supplied by a caller. It must never
// reach logs or persistent storage.
type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// PasswordHash is the encoded salted digest of a password.
type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

// Salt is the per-credential random value mixed into the password before
// hashing. It is stored next to the hash and replaced together with it.
type Salt []byte

const SaltLength = 32

// Credential is the single active (salt, hash) pair of an account. Rotation
// always replaces the pair as a whole, never one half of it.
type Credential struct {
	Salt Salt
	Hash PasswordHash
}

type Account struct {
	ID           ID
	Username     string
	Email        string
	Phone        string
	Salt         Salt
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type PasswordHasher interface {
	HashPassword(password RawPassword, salt Salt) PasswordHash
	ValidatePassword(password RawPassword, salt Salt, hash PasswordHash) bool
}

type SaltGenerator interface {
	GenerateSalt() (Salt, error)
}
