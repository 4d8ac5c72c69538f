package forgotpassword

import (
	"context"
	"testing"
	"time"

	"bookstand/internal/core/domain/account"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"

	"github.com/stretchr/testify/require"
)

const (
	USERNAME = "alice"
	EMAIL    = "a@x.com"
	PHONE    = "123-456-7890"
	TOKEN    = "test-reset-token"
)

var NOW = time.Date(2023, 3, 14, 15, 9, 26, 0, time.UTC)

type suite struct {
	log         *logging.FakeLogger
	accountRepo *account.FakeAccountRepository
	hasher      *account.FakePasswordHasher
	salts       *account.FakeSaltGenerator
	tokenIssuer *account.FakeTokenIssuer
	publisher   *account.FakeRotationPublisher
	notices     *account.FakeChangeNoticeSender
}

func setupSuite() *suite {
	accountRepo := account.NewFakeAccountRepository()
	accountRepo.Accounts = []account.Account{
		account.NewTestAccount(1, USERNAME, EMAIL, PHONE, "Old1!pass"),
	}
	return &suite{
		log:         logging.NewFakeLogger(),
		accountRepo: accountRepo,
		hasher:      account.NewFakePasswordHasher(),
		salts:       account.NewFakeSaltGenerator(),
		tokenIssuer: account.NewFakeTokenIssuer(TOKEN),
		publisher:   account.NewFakeRotationPublisher(),
		notices:     account.NewFakeChangeNoticeSender(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.accountRepo,
		s.hasher,
		s.salts,
		s.tokenIssuer,
		s.publisher,
		s.notices,
		func() time.Time { return NOW },
	)
}

func validInput() Input {
	return Input{
		Username:                USERNAME,
		Email:                   EMAIL,
		Phone:                   PHONE,
		NewPassword:             "Abcde1!2",
		NewPasswordConfirmation: "Abcde1!2",
	}
}

func TestPasswordSuccessfullyReset(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), validInput())

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, account.ResetToken(TOKEN), result.Token)

	rotated := suite.accountRepo.Accounts[0]
	require.True(t, suite.hasher.ValidatePassword("Abcde1!2", rotated.Salt, rotated.PasswordHash))
	require.False(t, suite.hasher.ValidatePassword("Old1!pass", rotated.Salt, rotated.PasswordHash))

	require.Len(t, suite.publisher.Published, 1)
	require.Equal(t, account.ID(1), suite.publisher.Published[0].AccountID)
	require.Equal(t, NOW, suite.publisher.Published[0].RotatedAt)
	require.Len(t, suite.notices.SentTo, 1)
	require.Equal(t, EMAIL, suite.notices.SentTo[0].Email)
}

func TestPolicyFailuresShortCircuitBeforeStoreAccess(t *testing.T) {
	cases := []struct {
		id          string
		mutate      func(i *Input)
		expectedErr error
	}{
		{
			id:          "password too short",
			mutate:      func(i *Input) { i.NewPassword = "short1!"; i.NewPasswordConfirmation = "short1!" },
			expectedErr: account.ErrInvalidPassword,
		},
		{
			id:          "confirmation mismatch",
			mutate:      func(i *Input) { i.NewPasswordConfirmation = "Abcde1!3" },
			expectedErr: account.ErrPasswordMismatch,
		},
		{
			id:          "confirmation mismatch wins over invalid email",
			mutate:      func(i *Input) { i.NewPasswordConfirmation = "Abcde1!3"; i.Email = "nope" },
			expectedErr: account.ErrPasswordMismatch,
		},
		{
			id:          "email without at sign",
			mutate:      func(i *Input) { i.Email = "not-an-email" },
			expectedErr: account.ErrInvalidEmail,
		},
		{
			id:          "phone without dashes",
			mutate:      func(i *Input) { i.Phone = "1234567890" },
			expectedErr: account.ErrInvalidPhone,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			input := validInput()
			testcase.mutate(&input)
			_, err := service.Run(context.Background(), input)

			// Verify ---
			require.ErrorIs(t, err, testcase.expectedErr)
			require.Equal(t, 0, suite.accountRepo.Lookups)
			require.Equal(t, 0, suite.accountRepo.Updates)
		})
	}
}

func TestTripleMismatchIsNotFound(t *testing.T) {
	cases := []struct {
		id     string
		mutate func(i *Input)
	}{
		{id: "unknown username", mutate: func(i *Input) { i.Username = "mallory" }},
		{id: "wrong email", mutate: func(i *Input) { i.Email = "b@x.com" }},
		{id: "wrong phone", mutate: func(i *Input) { i.Phone = "123-456-7891" }},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			input := validInput()
			testcase.mutate(&input)
			_, err := service.Run(context.Background(), input)

			// Verify ---
			require.ErrorIs(t, err, account.ErrAccountDoesNotExist)
			require.Equal(t, 0, suite.accountRepo.Updates)
			require.Empty(t, suite.publisher.Published)
			require.Empty(t, suite.notices.SentTo)
		})
	}
}

func TestNotificationFailuresDoNotFailTheRequest(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.publisher.ReturnError = true
	suite.notices.ReturnError = true
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), validInput())

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, account.ResetToken(TOKEN), result.Token)
	require.Equal(t, 1, suite.accountRepo.Updates)
}

func TestCredentialUpdateFailure(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.accountRepo.UpdateReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), validInput())

	// Verify ---
	require.ErrorIs(t, err, account.ErrCredentialUpdateFailed)
	require.Empty(t, suite.tokenIssuer.IssuedFor)
	require.Empty(t, suite.publisher.Published)
}
