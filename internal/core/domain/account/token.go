package account

import (
	"context"
	"time"
)

// ResetToken is a signed bearer artifact proving a just-completed credential
// rotation. It carries the account id and a fixed expiry; there is no
// server-side revocation state.
type ResetToken string

type TokenIssuer interface {
	IssueToken(accountID ID) (ResetToken, error)
	// AccountID validates the token signature and expiry and extracts the
	// account id it was issued for.
	AccountID(token ResetToken) (ID, error)
}

// RotatedEvent describes a completed credential rotation for downstream
// audit consumers.
type RotatedEvent struct {
	AccountID ID        `json:"accountId"`
	Username  string    `json:"username"`
	RotatedAt time.Time `json:"rotatedAt"`
}

type RotationPublisher interface {
	PublishRotated(ctx context.Context, event RotatedEvent) error
}

type ChangeNoticeSender interface {
	SendChangeNotice(ctx context.Context, acc Account) error
}
