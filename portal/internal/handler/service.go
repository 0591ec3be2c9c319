package handler

import (
	"context"

	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/Astemirdum/library-portal/portal/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type PortalService interface {
	SignUp(ctx context.Context, user model.User) error
	Login(ctx context.Context, username, password string) (model.User, error)
	Profile(ctx context.Context, userID int) (model.User, error)
	SearchBooks(ctx context.Context, q string, offset, limit int) ([]model.Book, bool, error)
	IssueBook(ctx context.Context, rec model.IssuedBook) (int, error)
	BorrowBook(ctx context.Context, rec model.IssuedBook) error
	IssuedBooks(ctx context.Context, userID int) ([]model.IssuedBookView, error)
	ReturnBook(ctx context.Context, userID, bookID int) error
}

var _ PortalService = (*service.Service)(nil)
