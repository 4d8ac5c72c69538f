package bookcache

import (
	"context"
	"testing"
	"time"

	"bookstand/internal/core/domain/book"
	"bookstand/internal/core/domain/logging"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Redis, *book.FakeRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := book.NewFakeRepository()
	cache := NewRedis(inner, client, logging.NewFakeLogger(), time.Minute)
	return cache, inner
}

func createBook(t *testing.T, repo book.Repository, title string) book.Book {
	t.Helper()
	created, err := repo.Create(context.Background(), book.CreateBookInput{
		Title:     title,
		Author:    "Author",
		Price:     9.99,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return created
}

func TestListServedFromCache(t *testing.T) {
	cache, inner := setupCache(t)
	createBook(t, cache, "First")

	page := book.Page{Number: 1, Size: 10}
	first, err := cache.List(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write bypassing the cache is not visible until the version changes.
	createBook(t, inner, "Second")
	second, err := cache.List(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, second, 1)
}

func TestWritesInvalidateCachedPages(t *testing.T) {
	cache, _ := setupCache(t)
	first := createBook(t, cache, "First")

	page := book.Page{Number: 1, Size: 10}
	books, err := cache.List(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, books, 1)

	createBook(t, cache, "Second")
	books, err = cache.List(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, books, 2)

	require.NoError(t, cache.Delete(context.Background(), first.ID))
	books, err = cache.List(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, books, 1)
}

func TestSearchGoesThroughCache(t *testing.T) {
	cache, _ := setupCache(t)
	createBook(t, cache, "Go in Action")
	createBook(t, cache, "Other")

	page := book.Page{Number: 1, Size: 10}
	books, err := cache.Search(context.Background(), "go", page)
	require.NoError(t, err)
	require.Len(t, books, 1)

	books, err = cache.Search(context.Background(), "go", page)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Go in Action", books[0].Title)
}
