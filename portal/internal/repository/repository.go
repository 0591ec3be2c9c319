package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Astemirdum/library-portal/portal/internal/errs"
	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, user model.User) (int, error)
	UserExists(ctx context.Context, username string) (bool, error)
	UserByCredentials(ctx context.Context, username, password string) (model.User, error)
	UserByID(ctx context.Context, userID int) (model.User, error)
	SearchBooks(ctx context.Context, q string, offset, limit int) ([]model.Book, error)
	BookByIDTitle(ctx context.Context, bookID int, title string) (model.Book, error)
	BooksByIDs(ctx context.Context, bookIDs []int) ([]model.Book, error)
	CreateIssued(ctx context.Context, rec model.IssuedBook) (int, error)
	IssuedByUser(ctx context.Context, userID int) ([]model.IssuedBook, error)
	DeleteIssued(ctx context.Context, userID, bookID int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName       = `users`
	booksTableName       = `books`
	issuedBooksTableName = `issued_books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateUser(ctx context.Context, user model.User) (int, error) {
	// password stored as given: the login contract compares it verbatim
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password").
		Values(user.Username, user.Email, user.Password).
		Suffix("returning user_id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errs.ErrUsernameTaken
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) UserExists(ctx context.Context, username string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where username = $1)`, usersTableName)

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) UserByCredentials(ctx context.Context, username, password string) (model.User, error) {
	q, args, err := qb.Select("user_id", "username", "email", "password").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Where(sq.Eq{"password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UserByID(ctx context.Context, userID int) (model.User, error) {
	q, args, err := qb.Select("user_id", "username", "email", "password").
		From(usersTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) SearchBooks(ctx context.Context, search string, offset, limit int) ([]model.Book, error) {
	pattern := fmt.Sprint("%", search, "%")
	q, args, err := qb.Select("book_id", "title", "author", "publisher", "genre").
		From(booksTableName).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"publisher": pattern},
		}).
		OrderBy("book_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchBooks", zap.String("query", q), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) BookByIDTitle(ctx context.Context, bookID int, title string) (model.Book, error) {
	q, args, err := qb.Select("book_id", "title", "author", "publisher", "genre").
		From(booksTableName).
		Where(sq.Eq{"book_id": bookID}).
		Where(sq.Eq{"title": title}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) BooksByIDs(ctx context.Context, bookIDs []int) ([]model.Book, error) {
	q, args, err := qb.Select("book_id", "title", "author", "publisher", "genre").
		From(booksTableName).
		Where(sq.Eq{"book_id": bookIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateIssued(ctx context.Context, rec model.IssuedBook) (int, error) {
	q, args, err := qb.Insert(issuedBooksTableName).
		Columns("user_id", "username", "book_id", "book_name", "issue_date", "due_date").
		Values(rec.UserID, rec.Username, rec.BookID, rec.BookName,
			rec.IssueDate.Format(time.DateOnly), rec.DueDate.Format(time.DateOnly)).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		r.log.Error("CreateIssued", zap.String("q", q), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) IssuedByUser(ctx context.Context, userID int) ([]model.IssuedBook, error) {
	q, args, err := qb.Select("id", "user_id", "username", "book_id", "book_name", "issue_date", "due_date").
		From(issuedBooksTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.IssuedBook
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// deleteIssuedSQL builds an unconditioned delete over the pair: no LIMIT, so
// duplicate issues of the same book to the same user all go at once.
func deleteIssuedSQL(userID, bookID int) (string, []interface{}, error) {
	return qb.Delete(issuedBooksTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
}

// DeleteIssued removes every issue record for the (user_id, book_id) pair.
func (r *repository) DeleteIssued(ctx context.Context, userID, bookID int) error {
	q, args, err := deleteIssuedSQL(userID, bookID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
