package services

import (
	"bookstand/internal/app/deps"
	"bookstand/internal/core/services"
	changepassword "bookstand/internal/core/services/change_password"
	createbook "bookstand/internal/core/services/create_book"
	deletebook "bookstand/internal/core/services/delete_book"
	forgotpassword "bookstand/internal/core/services/forgot_password"
	listbooks "bookstand/internal/core/services/list_books"
	searchbooks "bookstand/internal/core/services/search_books"
)

type Services struct {
	ChangePassword services.Service[changepassword.Input, changepassword.Result]
	ForgotPassword services.Service[forgotpassword.Input, forgotpassword.Result]

	ListBooks   services.Service[listbooks.Input, listbooks.Result]
	SearchBooks services.Service[searchbooks.Input, searchbooks.Result]
	CreateBook  services.Service[createbook.Input, createbook.Result]
	DeleteBook  services.Service[deletebook.Input, deletebook.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ChangePassword = changepassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.PasswordHasher,
		deps.SaltGenerator,
		deps.TokenIssuer,
		deps.Config.ChangePasswordVerifyCurrent,
	)
	s.ForgotPassword = forgotpassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.PasswordHasher,
		deps.SaltGenerator,
		deps.TokenIssuer,
		deps.RotationPublisher,
		deps.ChangeNoticeSender,
		deps.Now,
	)

	s.ListBooks = listbooks.New(deps.Logger, deps.BookRepository)
	s.SearchBooks = searchbooks.New(deps.Logger, deps.BookRepository)
	s.CreateBook = createbook.New(deps.Logger, deps.BookRepository, deps.Now)
	s.DeleteBook = deletebook.New(deps.Logger, deps.BookRepository)

	return s
}
