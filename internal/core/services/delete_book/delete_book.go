package deletebook

import (
	"context"
	"errors"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"
)

type Input struct {
	ID book.ID
}

type Result struct{}

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
	err = s.bookRepository.Delete(ctx, input.ID)
	if errors.Is(err, book.ErrBookDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("bookID", input.ID))
		return result, err
	}
	return result, nil
}
