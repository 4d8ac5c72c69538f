package createbook

import (
	"context"
	"time"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"
)

type Input struct {
	Title  string
	Author string
	Price  float64
}

type Result struct {
	Book book.Book
}

type service struct {
	log            logging.Logger
	bookRepository book.Repository
	now            func() time.Time
}

func New(
	log logging.Logger,
	bookRepository book.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if bookRepository == nil {
		panic(e.NewNilArgumentError("bookRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, bookRepository: bookRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	created, err := s.bookRepository.Create(ctx, book.CreateBookInput{
		Title:     input.Title,
		Author:    input.Author,
		Price:     input.Price,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("title", input.Title))
		return result, err
	}
	return Result{Book: created}, nil
}
