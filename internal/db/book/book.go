package book

import (
	"context"
	"errors"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxBookRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxBookRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxBookRepository{db: db}
}

func (r *PgxBookRepository) Create(
	ctx context.Context,
	input book.CreateBookInput,
) (b book.Book, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO book (title, author, price, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, author, price, created_at`,
		input.Title,
		input.Author,
		input.Price,
		input.CreatedAt,
	)
	err = row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.CreatedAt)
	return b, err
}

func (r *PgxBookRepository) List(ctx context.Context, page book.Page) ([]book.Book, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, author, price, created_at
		 FROM book ORDER BY id LIMIT $1 OFFSET $2`,
		page.Size,
		(page.Number-1)*page.Size,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PgxBookRepository) Search(
	ctx context.Context,
	query string,
	page book.Page,
) ([]book.Book, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, author, price, created_at
		 FROM book
		 WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
		 ORDER BY id LIMIT $2 OFFSET $3`,
		query,
		page.Size,
		(page.Number-1)*page.Size,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PgxBookRepository) Delete(ctx context.Context, id book.ID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM book WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return book.ErrBookDoesNotExist
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	books := make([]book.Book, 0, 10)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return books, nil
}
