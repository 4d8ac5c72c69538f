package forgotpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookstand/internal/core/domain/account"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/services"
	forgotpassword "bookstand/internal/core/services/forgot_password"
	"bookstand/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

const SuccessMessage = "Password updated successfully"

type Handler struct {
	service services.Service[forgotpassword.Input, forgotpassword.Result]
}

func New(
	service services.Service[forgotpassword.Input, forgotpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required),
		validation.Field(&i.Email, validation.Required),
		validation.Field(&i.Phone, validation.Required),
		validation.Field(&i.NewPassword, validation.Required),
		validation.Field(&i.ConfirmNewPassword, validation.Required),
	)
}

type Result struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderMissingParameters(rw, err)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		forgotpassword.Input{
			Username:                input.Username,
			Email:                   input.Email,
			Phone:                   input.Phone,
			NewPassword:             account.RawPassword(input.NewPassword),
			NewPasswordConfirmation: account.RawPassword(input.ConfirmNewPassword),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidPassword),
			errors.Is(err, account.ErrPasswordMismatch),
			errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidPhone):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderNotFound(rw, err.Error())
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(
		rw,
		Result{Message: SuccessMessage, ResetToken: string(result.Token)},
		http.StatusOK,
	)
}
