package passwordhasher

import (
	"crypto/subtle"
	"encoding/base64"

	"bookstand/internal/core/domain/account"

	"golang.org/x/crypto/argon2"
)

const (
	timeCost    = 1
	memoryKB    = 64 * 1024
	parallelism = 4
	keyLength   = 32
)

// Argon2 derives argon2id digests over a caller-supplied salt. The salt is
// held and rotated by the credential store, not embedded in the encoded hash.
type Argon2 struct {
	time        uint32
	memory      uint32
	parallelism uint8
	keyLength   uint32
}

func NewArgon2() *Argon2 {
	return &Argon2{
		time:        timeCost,
		memory:      memoryKB,
		parallelism: parallelism,
		keyLength:   keyLength,
	}
}

func (h *Argon2) HashPassword(password account.RawPassword, salt account.Salt) account.PasswordHash {
	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.parallelism, h.keyLength)
	return account.PasswordHash(base64.RawStdEncoding.EncodeToString(key))
}

func (h *Argon2) ValidatePassword(
	password account.RawPassword,
	salt account.Salt,
	hash account.PasswordHash,
) bool {
	actual := h.HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(hash)) == 1
}
