package searchbooks

import (
	"context"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"
	listbooks "bookstand/internal/core/services/list_books"
)

type Input struct {
	Query string
	Page  book.Page
}

type Result struct {
	Books []book.Book
}

type service struct {
	log            logging.Logger
	bookRepository book.Repository
}

func New(log logging.Logger, bookRepository book.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if bookRepository == nil {
		panic(e.NewNilArgumentError("bookRepository"))
	}
	return &service{log: log, bookRepository: bookRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	page := input.Page
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = listbooks.DefaultPageSize
	}
	if page.Size > listbooks.MaxPageSize {
		page.Size = listbooks.MaxPageSize
	}
	books, err := s.bookRepository.Search(ctx, input.Query, page)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("query", input.Query))
		return result, err
	}
	return Result{Books: books}, nil
}
