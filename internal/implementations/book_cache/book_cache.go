package bookcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookstand/internal/core/domain/book"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"time"

	"github.com/go-redis/redis/v9"
)

const versionKey = "books:version"

// Redis is a read-through cache in front of a book repository. Cache keys
// embed a version counter that is bumped on every catalog write, so stale
// pages expire without pattern deletes.
type Redis struct {
	inner  book.Repository
	client *redis.Client
	log    logging.Logger
	ttl    time.Duration
}

func NewRedis(
	inner book.Repository,
	client *redis.Client,
	log logging.Logger,
	ttl time.Duration,
) *Redis {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{inner: inner, client: client, log: log, ttl: ttl}
}

func (r *Redis) Create(ctx context.Context, input book.CreateBookInput) (book.Book, error) {
	created, err := r.inner.Create(ctx, input)
	if err != nil {
		return created, err
	}
	r.bumpVersion(ctx)
	return created, nil
}

func (r *Redis) Delete(ctx context.Context, id book.ID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.bumpVersion(ctx)
	return nil
}

func (r *Redis) List(ctx context.Context, page book.Page) ([]book.Book, error) {
	key := fmt.Sprintf("books:v%d:list:%d:%d", r.version(ctx), page.Number, page.Size)
	return r.cached(ctx, key, func() ([]book.Book, error) {
		return r.inner.List(ctx, page)
	})
}

func (r *Redis) Search(ctx context.Context, query string, page book.Page) ([]book.Book, error) {
	key := fmt.Sprintf("books:v%d:search:%s:%d:%d", r.version(ctx), query, page.Number, page.Size)
	return r.cached(ctx, key, func() ([]book.Book, error) {
		return r.inner.Search(ctx, query, page)
	})
}

func (r *Redis) cached(
	ctx context.Context,
	key string,
	load func() ([]book.Book, error),
) ([]book.Book, error) {
	cachedValue, err := r.client.Get(ctx, key).Result()
	if err == nil {
		books := []book.Book{}
		if err := json.Unmarshal([]byte(cachedValue), &books); err == nil {
			return books, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warning(ctx, "Could not read book cache.", logging.Entry("key", key), logging.Entry("err", err))
	}

	books, err := load()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(books)
	if err != nil {
		return books, nil
	}
	if err := r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		r.log.Warning(ctx, "Could not write book cache.", logging.Entry("key", key), logging.Entry("err", err))
	}
	return books, nil
}

func (r *Redis) version(ctx context.Context) int64 {
	version, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.log.Warning(ctx, "Could not read book cache version.", logging.Entry("err", err))
	}
	return version
}

func (r *Redis) bumpVersion(ctx context.Context) {
	if err := r.client.Incr(ctx, versionKey).Err(); err != nil {
		r.log.Warning(ctx, "Could not bump book cache version.", logging.Entry("err", err))
	}
}
