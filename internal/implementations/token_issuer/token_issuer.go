package tokenissuer

import (
	"fmt"
	"time"

	"bookstand/internal/core/domain/account"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	jwt.RegisteredClaims
	AccountID int64 `json:"accountId"`
}

// JWT issues HS256-signed reset confirmation tokens. The signing secret is
// provided once at construction and never read from ambient process state.
type JWT struct {
	secret        []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secret string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secret:        []byte(secret),
		validDuration: validDuration,
		now:           now,
	}
}

func (i *JWT) IssueToken(accountID account.ID) (account.ResetToken, error) {
	issuedAt := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.validDuration)),
		},
		AccountID: int64(accountID),
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign reset token: %w", err)
	}
	return account.ResetToken(signed), nil
}

func (i *JWT) AccountID(token account.ResetToken) (account.ID, error) {
	parsedClaims := &claims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		parsedClaims,
		func(t *jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}
	return account.ID(parsedClaims.AccountID), nil
}
