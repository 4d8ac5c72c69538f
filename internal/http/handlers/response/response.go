package response

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type messageResponse struct {
	Message string `json:"message"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderNotFound(rw http.ResponseWriter, msg string) {
	RenderError(rw, msg, http.StatusNotFound)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, messageResponse{Message: msg}, status)
}

// RenderMissingParameters formats an ozzo validation error as a single
// missing-parameter message listing the offending fields.
func RenderMissingParameters(rw http.ResponseWriter, err error) {
	validationErrors, ok := err.(validation.Errors)
	if !ok {
		RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	fields := make([]string, 0, len(validationErrors))
	for field := range validationErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	RenderError(
		rw,
		"missing required parameters: "+strings.Join(fields, ", "),
		http.StatusBadRequest,
	)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
