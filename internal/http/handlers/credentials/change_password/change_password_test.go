package changepassword

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstand/internal/core/domain/account"
	"bookstand/internal/core/domain/logging"
	changepassword "bookstand/internal/core/services/change_password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	USERNAME     = "alice"
	OLD_PASSWORD = "Oldpass1!"
	NEW_PASSWORD = "Abcde1!2"
)

type stubService struct {
	result changepassword.Result
	err    error
	input  *changepassword.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input changepassword.Input,
) (changepassword.Result, error) {
	s.input = &input
	return s.result, s.err
}

func TestChangePasswordSuccess(t *testing.T) {
	stub := &stubService{result: changepassword.Result{Token: "reset-token-123"}}
	handler := New(stub)

	body := `{
		"username": "alice",
		"currentPasswordField": "Oldpass1!",
		"newPassword": "Abcde1!2",
		"confirmNewPassword": "Abcde1!2"
	}`
	rr := serve(handler, body)

	assert := require.New(t)
	assert.Equal(http.StatusOK, rr.Code)
	result := decodeResult(t, rr)
	assert.Equal(SuccessMessage, result.Message)
	assert.Equal("reset-token-123", result.ResetToken)
	assert.NotNil(stub.input)
	assert.Equal(USERNAME, stub.input.Username)
	assert.Equal(account.RawPassword(OLD_PASSWORD), stub.input.CurrentPassword)
	assert.Equal(account.RawPassword(NEW_PASSWORD), stub.input.NewPassword)
}

func TestChangePasswordMissingParameters(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{
			id:   "no username",
			body: `{"currentPasswordField": "Oldpass1!", "newPassword": "Abcde1!2", "confirmNewPassword": "Abcde1!2"}`,
		},
		{
			id:   "no current password",
			body: `{"username": "alice", "newPassword": "Abcde1!2", "confirmNewPassword": "Abcde1!2"}`,
		},
		{
			id:   "no new password",
			body: `{"username": "alice", "currentPasswordField": "Oldpass1!", "confirmNewPassword": "Abcde1!2"}`,
		},
		{
			id:   "no confirmation",
			body: `{"username": "alice", "currentPasswordField": "Oldpass1!", "newPassword": "Abcde1!2"}`,
		},
		{id: "empty body", body: `{}`},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub)

			rr := serve(handler, testcase.body)

			assert := require.New(t)
			assert.Equal(http.StatusBadRequest, rr.Code)
			assert.Nil(stub.input)
		})
	}
}

func TestChangePasswordMissingCurrentPasswordDoesNotReachService(t *testing.T) {
	stub := &stubService{result: changepassword.Result{Token: "t"}}
	handler := New(stub)

	body := `{
		"username": "alice",
		"newPassword": "Abcde1!2",
		"confirmNewPassword": "Abcde1!2"
	}`
	rr := serve(handler, body)

	assert := require.New(t)
	assert.Equal(http.StatusBadRequest, rr.Code)
	assert.Nil(stub.input)
}

func TestChangePasswordServiceErrors(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
	}{
		{id: "invalid password", err: account.ErrInvalidPassword, expectedStatus: http.StatusBadRequest},
		{id: "password mismatch", err: account.ErrPasswordMismatch, expectedStatus: http.StatusBadRequest},
		{id: "invalid credentials", err: account.ErrInvalidCredentials, expectedStatus: http.StatusBadRequest},
		{id: "account not found", err: account.ErrAccountDoesNotExist, expectedStatus: http.StatusNotFound},
		{id: "update failed", err: account.ErrCredentialUpdateFailed, expectedStatus: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.err}
			handler := New(stub)

			body := `{
				"username": "alice",
				"currentPasswordField": "Oldpass1!",
				"newPassword": "Abcde1!2",
				"confirmNewPassword": "Abcde1!2"
			}`
			rr := serve(handler, body)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}

func TestChangePasswordInvalidJSON(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	rr := serve(handler, `{"username": `)

	assert := require.New(t)
	assert.Equal(http.StatusBadRequest, rr.Code)
	assert.Nil(stub.input)
}

func TestChangePasswordWiredService(t *testing.T) {
	repo := account.NewFakeAccountRepository()
	repo.Accounts = []account.Account{
		account.NewTestAccount(1, USERNAME, "a@x.com", "123-456-7890", OLD_PASSWORD),
	}
	service := changepassword.New(
		logging.NewFakeLogger(),
		repo,
		account.NewFakePasswordHasher(),
		account.NewFakeSaltGenerator(),
		account.NewFakeTokenIssuer("issued-token"),
		false,
	)
	handler := New(service)

	// The field must be present, but with verification off its value is
	// never compared, so a wrong one still succeeds.
	body := `{
		"username": "alice",
		"currentPasswordField": "not-the-old-password",
		"newPassword": "Abcde1!2",
		"confirmNewPassword": "Abcde1!2"
	}`
	rr := serve(handler, body)

	assert := require.New(t)
	assert.Equal(http.StatusOK, rr.Code)
	result := decodeResult(t, rr)
	assert.Equal(SuccessMessage, result.Message)
	assert.Equal("issued-token", result.ResetToken)
}

func serve(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/changePassword", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeResult(t *testing.T, rr *httptest.ResponseRecorder) Result {
	t.Helper()
	result := Result{}
	err := json.Unmarshal(rr.Body.Bytes(), &result)
	require.NoError(t, err)
	return result
}
