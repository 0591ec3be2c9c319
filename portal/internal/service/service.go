package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-portal/portal/internal/errs"
	"github.com/Astemirdum/library-portal/portal/internal/model"
	portalRepo "github.com/Astemirdum/library-portal/portal/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo portalRepo.Repository
}

func NewService(repo portalRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) SignUp(ctx context.Context, user model.User) error {
	exists, err := s.repo.UserExists(ctx, user.Username)
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrUsernameTaken
	}
	// the insert itself may still hit the unique constraint if a signup for
	// the same username races the check; the repo maps that to ErrUsernameTaken
	_, err = s.repo.CreateUser(ctx, user)
	return err
}

func (s *Service) Login(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.UserByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Service) Profile(ctx context.Context, userID int) (model.User, error) {
	return s.repo.UserByID(ctx, userID)
}

// SearchBooks pages through the catalog. hasMore is a heuristic: a full page
// means there may be more, so an exact multiple of limit reports a phantom
// extra page.
func (s *Service) SearchBooks(ctx context.Context, q string, offset, limit int) ([]model.Book, bool, error) {
	books, err := s.repo.SearchBooks(ctx, q, offset, limit)
	if err != nil {
		return nil, false, err
	}
	return books, len(books) == limit, nil
}

func (s *Service) IssueBook(ctx context.Context, rec model.IssuedBook) (int, error) {
	// a lookup failure reads as book-not-found, same as an empty match
	if _, err := s.repo.BookByIDTitle(ctx, rec.BookID, rec.BookName); err != nil {
		return 0, errs.ErrBookNotFound
	}
	return s.repo.CreateIssued(ctx, rec)
}

// BorrowBook records an issue dated now with the due date one calendar month
// out (AddDate rollover: Jan 31 lands in early March). The book pair is taken
// on trust from the browse page; no catalog or duplicate-issue check is made.
func (s *Service) BorrowBook(ctx context.Context, rec model.IssuedBook) error {
	now := time.Now().UTC()
	rec.IssueDate = now
	rec.DueDate = now.AddDate(0, 1, 0)

	_, err := s.repo.CreateIssued(ctx, rec)
	return err
}

func (s *Service) IssuedBooks(ctx context.Context, userID int) ([]model.IssuedBookView, error) {
	issued, err := s.repo.IssuedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(issued) == 0 {
		return []model.IssuedBookView{}, nil
	}

	bookIDs := make([]int, 0, len(issued))
	recByBookID := make(map[int]model.IssuedBook, len(issued))
	for _, rec := range issued {
		bookIDs = append(bookIDs, rec.BookID)
		recByBookID[rec.BookID] = rec
	}

	books, err := s.repo.BooksByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	views := make([]model.IssuedBookView, 0, len(books))
	for _, book := range books {
		rec, ok := recByBookID[book.BookID]
		if !ok {
			continue
		}
		views = append(views, model.IssuedBookView{
			Book:      book,
			IssueDate: rec.IssueDate.Format("02-01-2006"),
			DueDate:   rec.DueDate.Format("02-01-2006"),
		})
	}
	return views, nil
}

func (s *Service) ReturnBook(ctx context.Context, userID, bookID int) error {
	return s.repo.DeleteIssued(ctx, userID, bookID)
}
