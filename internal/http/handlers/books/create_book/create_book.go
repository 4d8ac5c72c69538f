package createbook

import (
	"encoding/json"
	"io"
	"net/http"

	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/services"
	service "bookstand/internal/core/services/create_book"
	"bookstand/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 512)),
		validation.Field(&i.Author, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Price, validation.Min(0.0)),
	)
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
		service.Input{Title: input.Title, Author: input.Author, Price: input.Price},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	view := response.Book{}
	view.FromDomainType(result.Book)
	response.Render(rw, view, http.StatusCreated)
}
