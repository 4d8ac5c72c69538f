package listbooks

import (
	"errors"
	"net/http"
	"strconv"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/services"
	service "bookstand/internal/core/services/list_books"
	"bookstand/internal/http/handlers/response"
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

type Result struct {
	Books []response.Book `json:"books"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	page, err := ParsePage(r)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Page: page})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Books: response.ToBooks(result.Books)}, http.StatusOK)
}

// ParsePage reads the page and pageSize query parameters. Missing
// parameters are left zero so the service applies its defaults.
func ParsePage(r *http.Request) (page book.Page, err error) {
	rawPage := r.URL.Query().Get("page")
	if rawPage != "" {
		page.Number, err = strconv.Atoi(rawPage)
		if err != nil || page.Number < 1 {
			return page, errInvalidPage
		}
	}
	rawSize := r.URL.Query().Get("pageSize")
	if rawSize != "" {
		page.Size, err = strconv.Atoi(rawSize)
		if err != nil || page.Size < 1 {
			return page, errInvalidPageSize
		}
	}
	return page, nil
}

var (
	errInvalidPage     = errors.New("invalid page query parameter")
	errInvalidPageSize = errors.New("invalid pageSize query parameter")
)
