package model

import (
	"time"
)

type User struct {
	UserID   int    `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

type Book struct {
	BookID    int    `json:"book_id" db:"book_id"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	Publisher string `json:"publisher" db:"publisher"`
	Genre     string `json:"genre" db:"genre"`
}

type IssuedBook struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Username  string    `db:"username"`
	BookID    int       `db:"book_id"`
	BookName  string    `db:"book_name"`
	IssueDate time.Time `db:"issue_date"`
	DueDate   time.Time `db:"due_date"`
}

// IssuedBookView is one row of the issued-books page: catalog details
// merged with the issue record, dates already formatted DD-MM-YYYY.
type IssuedBookView struct {
	Book
	IssueDate string
	DueDate   string
}

type SignupRequest struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type IssueRequest struct {
	Username  string `form:"username" validate:"required"`
	UserID    string `form:"user_id" validate:"required"`
	BookID    string `form:"book_id" validate:"required"`
	BookName  string `form:"book_name" validate:"required"`
	IssueDate string `form:"issue_date" validate:"required"`
	DueDate   string `form:"due_date" validate:"required"`
}

type BorrowRequest struct {
	UserID   string `form:"user_id" validate:"required"`
	Username string `form:"username" validate:"required"`
	BookID   string `form:"book_id" validate:"required"`
	BookName string `form:"book_name" validate:"required"`
}

type ReturnRequest struct {
	UserID   string `form:"user_id" validate:"required"`
	Username string `form:"username" validate:"required"`
	BookID   string `form:"book_id" validate:"required"`
}

type SearchResponse struct {
	Success bool   `json:"success"`
	Books   []Book `json:"books"`
	HasMore bool   `json:"hasMore"`
}

type SearchError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Per-page view data passed to the template renderer.

type AuthPage struct {
	Message string
}

type DashboardPage struct {
	Username string
	UserID   string
}

type BrowsePage struct {
	Username string
	UserID   string
}

type IssuePage struct {
	Message string
}

type IssuedBooksPage struct {
	Username string
	UserID   string
	Books    []IssuedBookView
}
