package book

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type FakeRepository struct {
	Books       []Book
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Books: make([]Book, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateBookInput) (b Book, err error) {
	if r.ReturnError {
		return b, fmt.Errorf("could not create book %q", input.Title)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Books {
		maxID = existing.ID
	}
	b = Book{
		ID:        maxID + 1,
		Title:     input.Title,
		Author:    input.Author,
		Price:     input.Price,
		CreatedAt: input.CreatedAt,
	}
	r.Books = append(r.Books, b)
	return b, nil
}

func (r *FakeRepository) List(ctx context.Context, page Page) ([]Book, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list books")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return paginate(r.Books, page), nil
}

func (r *FakeRepository) Search(ctx context.Context, query string, page Page) ([]Book, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not search books")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	matched := make([]Book, 0, len(r.Books))
	q := strings.ToLower(query)
	for _, b := range r.Books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			matched = append(matched, b)
		}
	}
	return paginate(matched, page), nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete book %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, b := range r.Books {
		if b.ID == id {
			r.Books = append(r.Books[:ix], r.Books[ix+1:]...)
			return nil
		}
	}
	return ErrBookDoesNotExist
}

func paginate(books []Book, page Page) []Book {
	start := (page.Number - 1) * page.Size
	if start >= len(books) || start < 0 {
		return []Book{}
	}
	end := start + page.Size
	if end > len(books) {
		end = len(books)
	}
	result := make([]Book, end-start)
	copy(result, books[start:end])
	return result
}
