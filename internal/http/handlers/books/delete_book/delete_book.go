package deletebook

import (
	"errors"
	"net/http"
	"strconv"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/services"
	service "bookstand/internal/core/services/delete_book"
	"bookstand/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "bookID")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid book ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{ID: book.ID(id)})
	if err != nil {
		if errors.Is(err, book.ErrBookDoesNotExist) {
			response.RenderNotFound(rw, err.Error())
			return
		}
		response.RenderInternalError(rw)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
