package book

import (
	"context"
	"time"
)

type CreateBookInput struct {
	Title     string
	Author    string
	Price     float64
	CreatedAt time.Time
}

type Page struct {
	Number int
	Size   int
}

type Repository interface {
	Create(ctx context.Context, input CreateBookInput) (Book, error)
	List(ctx context.Context, page Page) ([]Book, error)
	Search(ctx context.Context, query string, page Page) ([]Book, error)
	Delete(ctx context.Context, id ID) error
}
