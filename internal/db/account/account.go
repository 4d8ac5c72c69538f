package account

import (
	"context"
	"encoding/base64"
	"errors"

	"bookstand/internal/core/domain/account"
	e "bookstand/internal/core/domain/errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "account_username_idx"

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxAccountRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAccountRepository{db: db}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (username, email, phone, salt, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, username, email, phone, salt, password_hash, created_at`,
		input.Username,
		input.Email,
		input.Phone,
		encodeSalt(input.Salt),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = scanAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == USERNAME_CONSTRAINT_NAME {
			return a, account.ErrUsernameAlreadyExists
		}
	}
	return a, err
}

func (r *PgxAccountRepository) GetByUsername(
	ctx context.Context,
	username string,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, phone, salt, password_hash, created_at
		 FROM account WHERE username = $1`,
		username,
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxAccountRepository) GetByAttributes(
	ctx context.Context,
	query account.AttributeQuery,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, phone, salt, password_hash, created_at
		 FROM account WHERE username = $1 AND email = $2 AND phone = $3`,
		query.Username,
		query.Email,
		query.Phone,
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

// UpdateCredential replaces salt and hash in one statement keyed on the
// account id, so a concurrently deleted account surfaces as not-found
// instead of a silent no-op.
func (r *PgxAccountRepository) UpdateCredential(
	ctx context.Context,
	id account.ID,
	credential account.Credential,
) error {
	commandTag, err := r.db.Exec(
		ctx,
		`UPDATE account SET salt = $2, password_hash = $3 WHERE id = $1`,
		int64(id),
		encodeSalt(credential.Salt),
		string(credential.Hash),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func scanAccount(row pgx.Row) (a account.Account, err error) {
	var encodedSalt string
	var hash string
	err = row.Scan(&a.ID, &a.Username, &a.Email, &a.Phone, &encodedSalt, &hash, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	salt, err := decodeSalt(encodedSalt)
	if err != nil {
		return a, err
	}
	a.Salt = salt
	a.PasswordHash = account.PasswordHash(hash)
	return a, nil
}

func encodeSalt(salt account.Salt) string {
	return base64.RawStdEncoding.EncodeToString(salt)
}

func decodeSalt(encoded string) (account.Salt, error) {
	salt, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	return account.Salt(salt), nil
}
