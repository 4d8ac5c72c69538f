package app

import (
	"fmt"
	"net/http"

	"bookstand/internal/app/deps"
	"bookstand/internal/app/services"
	createbook "bookstand/internal/http/handlers/books/create_book"
	deletebook "bookstand/internal/http/handlers/books/delete_book"
	listbooks "bookstand/internal/http/handlers/books/list_books"
	searchbooks "bookstand/internal/http/handlers/books/search_books"
	changepassword "bookstand/internal/http/handlers/credentials/change_password"
	forgotpassword "bookstand/internal/http/handlers/credentials/forgot_password"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	booksRouter := chi.NewRouter()
	booksRouter.Method(http.MethodGet, "/", listbooks.New(s.ListBooks))
	booksRouter.Method(http.MethodGet, "/search", searchbooks.New(s.SearchBooks))
	booksRouter.Method(http.MethodPost, "/", createbook.New(s.CreateBook))
	booksRouter.Method(http.MethodDelete, "/{bookID:[0-9]+}", deletebook.New(s.DeleteBook))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodPut, "/changePassword", changepassword.New(s.ChangePassword))
	router.Method(http.MethodPut, "/forgotPassword", forgotpassword.New(s.ForgotPassword))
	router.Mount("/books", booksRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
