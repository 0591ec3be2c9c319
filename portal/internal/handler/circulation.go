package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/Astemirdum/library-portal/portal/internal/errs"
	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit  = 50
	defaultSearchOffset = 0
)

func (h *Handler) SearchBooks(c echo.Context) error {
	q := c.QueryParam("q")

	// zero, negative and unparseable values all fall back to the defaults
	offset := defaultSearchOffset
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	limit := defaultSearchLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	books, hasMore, err := h.portalSvc.SearchBooks(c.Request().Context(), q, offset, limit)
	if err != nil {
		h.log.Error("search", zap.String("q", q), zap.Error(err))
		// search errors stay inside the envelope, the endpoint never 500s
		return c.JSON(http.StatusOK, model.SearchError{Success: false, Error: "Database error"})
	}
	if books == nil {
		books = []model.Book{}
	}
	return c.JSON(http.StatusOK, model.SearchResponse{Success: true, Books: books, HasMore: hasMore})
}

func (h *Handler) IssuedBooks(c echo.Context) error {
	username := c.QueryParam("username")
	userIDParam := c.QueryParam("user_id")
	if username == "" || userIDParam == "" {
		return c.Redirect(http.StatusFound, "/login")
	}
	userID, err := strconv.Atoi(userIDParam)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	books, err := h.portalSvc.IssuedBooks(c.Request().Context(), userID)
	if err != nil {
		h.log.Error("issued books", zap.Int("user_id", userID), zap.Error(err))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}
	return c.Render(http.StatusOK, "issued_books.html", model.IssuedBooksPage{
		Username: username,
		UserID:   userIDParam,
		Books:    books,
	})
}

// IssueBook is the manual issue form: the caller supplies both dates and the
// outcome always comes back as the form with a message.
func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "All fields are required."})
	}

	bookID, err := strconv.Atoi(req.BookID)
	if err != nil {
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Book not found."})
	}
	userID, err := strconv.Atoi(req.UserID)
	if err != nil {
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Failed to issue book."})
	}
	issueDate, err := time.Parse(time.DateOnly, req.IssueDate)
	if err != nil {
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Failed to issue book."})
	}
	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Failed to issue book."})
	}

	rec := model.IssuedBook{
		UserID:    userID,
		Username:  req.Username,
		BookID:    bookID,
		BookName:  req.BookName,
		IssueDate: issueDate,
		DueDate:   dueDate,
	}
	id, err := h.portalSvc.IssueBook(c.Request().Context(), rec)
	if err != nil {
		if errors.Is(err, errs.ErrBookNotFound) {
			return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Book not found."})
		}
		h.log.Error("issue", zap.Int("book_id", bookID), zap.Error(err))
		return c.Render(http.StatusOK, "issue.html", model.IssuePage{Message: "Failed to issue book."})
	}

	h.logEvent(kafka.EventIssued, rec)
	return c.Render(http.StatusOK, "issue.html", model.IssuePage{
		Message: fmt.Sprintf("Book issued successfully! Issue ID: %d", id),
	})
}

func (h *Handler) BorrowBook(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusInternalServerError, "Failed to borrow book.")
	}
	userID, err := strconv.Atoi(req.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to borrow book.")
	}
	bookID, err := strconv.Atoi(req.BookID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to borrow book.")
	}

	rec := model.IssuedBook{
		UserID:   userID,
		Username: req.Username,
		BookID:   bookID,
		BookName: req.BookName,
	}
	if err := h.portalSvc.BorrowBook(c.Request().Context(), rec); err != nil {
		h.log.Error("borrow", zap.Int("book_id", bookID), zap.Error(err))
		return c.String(http.StatusInternalServerError, "Failed to borrow book.")
	}

	h.logEvent(kafka.EventIssued, rec)
	return h.redirectIssuedBooks(c, req.Username, req.UserID)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, "Missing data.")
	}
	userID, err := strconv.Atoi(req.UserID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to return book.")
	}
	bookID, err := strconv.Atoi(req.BookID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to return book.")
	}

	if err := h.portalSvc.ReturnBook(c.Request().Context(), userID, bookID); err != nil {
		h.log.Error("return", zap.Int("book_id", bookID), zap.Error(err))
		return c.String(http.StatusInternalServerError, "Failed to return book.")
	}

	h.logEvent(kafka.EventReturned, model.IssuedBook{
		UserID:   userID,
		Username: req.Username,
		BookID:   bookID,
	})
	return h.redirectIssuedBooks(c, req.Username, req.UserID)
}

func (h *Handler) redirectIssuedBooks(c echo.Context, username, userID string) error {
	q := url.Values{}
	q.Set("username", username)
	q.Set("user_id", userID)
	return c.Redirect(http.StatusFound, "/issued_books?"+q.Encode())
}

func (h *Handler) logEvent(event string, rec model.IssuedBook) {
	ev := kafka.CirculationEvent{
		Event:    event,
		UserID:   rec.UserID,
		Username: rec.Username,
		BookID:   rec.BookID,
		BookName: rec.BookName,
		At:       time.Now().UTC(),
	}
	if err := h.events.Log(ev); err != nil {
		h.log.Warn("event log", zap.String("event", event), zap.Error(err))
	}
}
