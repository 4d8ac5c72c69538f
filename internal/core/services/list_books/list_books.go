package listbooks

import (
	"context"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Input struct {
	Page book.Page
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
	page := clampPage(input.Page)
	books, err := s.bookRepository.List(ctx, page)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("page", page.Number))
		return result, err
	}
	return Result{Books: books}, nil
}

func clampPage(page book.Page) book.Page {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = DefaultPageSize
	}
	if page.Size > MaxPageSize {
		page.Size = MaxPageSize
	}
	return page
}
