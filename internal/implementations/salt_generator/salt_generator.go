package saltgenerator

import (
	"crypto/rand"
	"io"

	"bookstand/internal/core/domain/account"
)

// Generator produces cryptographically random salts of account.SaltLength
// bytes.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateSalt() (account.Salt, error) {
	salt := make(account.Salt, account.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}
