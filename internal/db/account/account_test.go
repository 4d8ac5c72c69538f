package account

import (
	"context"
	"testing"
	"time"

	"bookstand/internal/core/domain/account"
	"bookstand/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = "alice"
	EMAIL         = "a@x.com"
	PHONE         = "123-456-7890"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2023, 3, 14, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxAccountRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAccountRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount() account.Account {
	created, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		Username:     USERNAME,
		Email:        EMAIL,
		Phone:        PHONE,
		Salt:         account.Salt("0123456789abcdef0123456789abcdef"),
		PasswordHash: account.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Nil(err)
	return created
}

func (suite *testSuite) TestCreateAndGetByUsername() {
	created := suite.createAccount()

	got, err := suite.repo.GetByUsername(context.Background(), USERNAME)

	suite.Nil(err)
	suite.Equal(created.ID, got.ID)
	suite.Equal(USERNAME, got.Username)
	suite.Equal(EMAIL, got.Email)
	suite.Equal(PHONE, got.Phone)
	suite.Equal(account.Salt("0123456789abcdef0123456789abcdef"), got.Salt)
	suite.Equal(account.PasswordHash(PASSWORD_HASH), got.PasswordHash)
}

func (suite *testSuite) TestCreateDuplicateUsername() {
	suite.createAccount()

	_, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		Username:     USERNAME,
		Email:        "other@x.com",
		Phone:        "987-654-3210",
		Salt:         account.Salt("0123456789abcdef0123456789abcdef"),
		PasswordHash: account.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})

	suite.ErrorIs(err, account.ErrUsernameAlreadyExists)
}

func (suite *testSuite) TestGetByUsernameNotFound() {
	_, err := suite.repo.GetByUsername(context.Background(), "unknown")

	suite.ErrorIs(err, account.ErrAccountDoesNotExist)
}

func (suite *testSuite) TestGetByAttributes() {
	created := suite.createAccount()

	got, err := suite.repo.GetByAttributes(context.Background(), account.AttributeQuery{
		Username: USERNAME,
		Email:    EMAIL,
		Phone:    PHONE,
	})

	suite.Nil(err)
	suite.Equal(created.ID, got.ID)
}

func (suite *testSuite) TestGetByAttributesPartialMatchIsNotFound() {
	suite.createAccount()

	queries := []account.AttributeQuery{
		{Username: USERNAME, Email: EMAIL, Phone: "999-999-9999"},
		{Username: USERNAME, Email: "other@x.com", Phone: PHONE},
		{Username: "other", Email: EMAIL, Phone: PHONE},
	}
	for _, query := range queries {
		_, err := suite.repo.GetByAttributes(context.Background(), query)
		suite.ErrorIs(err, account.ErrAccountDoesNotExist)
	}
}

func (suite *testSuite) TestUpdateCredential() {
	created := suite.createAccount()

	err := suite.repo.UpdateCredential(context.Background(), created.ID, account.Credential{
		Salt: account.Salt("fedcba9876543210fedcba9876543210"),
		Hash: account.PasswordHash("new-password-hash"),
	})

	suite.Nil(err)
	got, err := suite.repo.GetByUsername(context.Background(), USERNAME)
	suite.Nil(err)
	suite.Equal(account.Salt("fedcba9876543210fedcba9876543210"), got.Salt)
	suite.Equal(account.PasswordHash("new-password-hash"), got.PasswordHash)
}

func (suite *testSuite) TestUpdateCredentialUnknownAccount() {
	err := suite.repo.UpdateCredential(context.Background(), account.ID(12345), account.Credential{
		Salt: account.Salt("fedcba9876543210fedcba9876543210"),
		Hash: account.PasswordHash("new-password-hash"),
	})

	suite.ErrorIs(err, account.ErrAccountDoesNotExist)
}
