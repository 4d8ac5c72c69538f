package book

import "time"

type ID int64

type Book struct {
	ID        ID
	Title     string
	Author    string
	Price     float64
	CreatedAt time.Time
}
