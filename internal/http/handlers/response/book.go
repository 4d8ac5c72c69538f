package response

import (
	"time"

	"bookstand/internal/core/domain/book"
)

type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Book) FromDomainType(db book.Book) {
	b.ID = int64(db.ID)
	b.Title = db.Title
	b.Author = db.Author
	b.Price = db.Price
	b.CreatedAt = db.CreatedAt
}

func ToBooks(books []book.Book) []Book {
	views := make([]Book, len(books))
	for ix, b := range books {
		views[ix].FromDomainType(b)
	}
	return views
}
