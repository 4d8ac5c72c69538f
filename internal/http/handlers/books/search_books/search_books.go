package searchbooks

import (
	"net/http"

	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/services"
	service "bookstand/internal/core/services/search_books"
	listbooks "bookstand/internal/http/handlers/books/list_books"
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
	query := r.URL.Query().Get("q")
	if query == "" {
		response.RenderError(rw, "missing required parameters: q", http.StatusBadRequest)
		return
	}
	page, err := listbooks.ParsePage(r)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Query: query, Page: page})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Books: response.ToBooks(result.Books)}, http.StatusOK)
}
