package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/Astemirdum/library-portal/pkg/validate"
	"github.com/Astemirdum/library-portal/portal/internal/errs"
	"github.com/Astemirdum/library-portal/portal/internal/handler"
	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-portal/portal/internal/handler/mocks"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.Renderer = handler.NewRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	return e
}

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockPortalService) {
	t.Helper()
	return newTestHandlerWithEvents(t, handler.NewNopEventLog())
}

func newTestHandlerWithEvents(t *testing.T, events handler.EventLog) (*handler.Handler, *service_mocks.MockPortalService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockPortalService(c)
	log := zap.NewExample().Named("test")
	return handler.New(svc, events, "test-secret", log), svc
}

// failingEventLog simulates an unreachable broker.
type failingEventLog struct{}

func (failingEventLog) Log(kafka.CirculationEvent) error { return errors.New("broker down") }

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	e := newTestEcho()
	e.GET("/manage/health", h.Health)

	r := httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		target string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPortalService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. full page",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SearchBooks(context.Background(), "go", 0, 2).
					Return([]model.Book{
						{BookID: 1, Title: "The Go Programming Language", Author: "Donovan", Publisher: "AW", Genre: "tech"},
						{BookID: 2, Title: "Go in Action", Author: "Kennedy", Publisher: "Manning", Genre: "tech"},
					}, true, nil)
			},
			input: input{target: "/search?q=go&offset=0&limit=2"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"books":[{"book_id":1,"title":"The Go Programming Language","author":"Donovan","publisher":"AW","genre":"tech"},{"book_id":2,"title":"Go in Action","author":"Kennedy","publisher":"Manning","genre":"tech"}],"hasMore":true}`,
			},
		},
		{
			name: "ok. defaults applied",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SearchBooks(context.Background(), "", 0, 50).
					Return([]model.Book{}, false, nil)
			},
			input: input{target: "/search"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"books":[],"hasMore":false}`,
			},
		},
		{
			name: "ok. negative paging falls back to defaults",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SearchBooks(context.Background(), "go", 0, 50).
					Return([]model.Book{}, false, nil)
			},
			input: input{target: "/search?q=go&offset=-1&limit=-5"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"books":[],"hasMore":false}`,
			},
		},
		{
			name: "err. database error stays in envelope",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SearchBooks(context.Background(), "go", 0, 50).
					Return(nil, false, errors.New("db internal"))
			},
			input: input{target: "/search?q=go"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":false,"error":"Database error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			tt.mockBehavior(svc)

			e := newTestEcho()
			e.GET("/search", h.SearchBooks)

			r := httptest.NewRequest(http.MethodGet, tt.input.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SignUp(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}
	type mockBehavior func(r *service_mocks.MockPortalService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		form         url.Values
		response     response
	}{
		{
			name:         "err. missing fields",
			mockBehavior: func(r *service_mocks.MockPortalService) {},
			form: url.Values{
				"username": {"alice"},
				"password": {"pw"},
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "All fields are required.",
			},
		},
		{
			name:         "err. passwords do not match",
			mockBehavior: func(r *service_mocks.MockPortalService) {},
			form: url.Values{
				"username":        {"alice"},
				"email":           {"alice@example.com"},
				"password":        {"pw"},
				"confirmPassword": {"pw2"},
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "Passwords do not match.",
			},
		},
		{
			name: "err. username taken",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SignUp(context.Background(), model.User{Username: "alice", Email: "alice@example.com", Password: "pw"}).
					Return(errs.ErrUsernameTaken)
			},
			form: url.Values{
				"username":        {"alice"},
				"email":           {"alice@example.com"},
				"password":        {"pw"},
				"confirmPassword": {"pw"},
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "Username already exists.",
			},
		},
		{
			name: "ok. redirect to login",
			mockBehavior: func(r *service_mocks.MockPortalService) {
				r.EXPECT().
					SignUp(context.Background(), model.User{Username: "alice", Email: "alice@example.com", Password: "pw"}).
					Return(nil)
			},
			form: url.Values{
				"username":        {"alice"},
				"email":           {"alice@example.com"},
				"password":        {"pw"},
				"confirmPassword": {"pw"},
			},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/login",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			tt.mockBehavior(svc)

			e := newTestEcho()
			e.POST("/signup", h.SignUp)

			w := postForm(e, "/signup", tt.form)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedLocation != "" {
				require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			}
			if tt.response.expectedBody != "" {
				require.Contains(t, w.Body.String(), tt.response.expectedBody)
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("ok. session established and redirect carries identity", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			Login(context.Background(), "alice", "pw").
			Return(model.User{UserID: 5, Username: "alice", Email: "alice@example.com"}, nil)

		e := newTestEcho()
		e.POST("/login", h.Login)

		w := postForm(e, "/login", url.Values{"username": {"alice"}, "password": {"pw"}})

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/dashboard?user_id=5&username=alice", w.Header().Get(echo.HeaderLocation))
		require.NotEmpty(t, w.Result().Cookies(), "login must set the session cookie")
	})

	t.Run("err. invalid credentials", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			Login(context.Background(), "alice", "nope").
			Return(model.User{}, errs.ErrInvalidCredentials)

		e := newTestEcho()
		e.POST("/login", h.Login)

		w := postForm(e, "/login", url.Values{"username": {"alice"}, "password": {"nope"}})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Invalid credentials.")
	})

	t.Run("err. missing fields", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		e := newTestEcho()
		e.POST("/login", h.Login)

		w := postForm(e, "/login", url.Values{"username": {"alice"}})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "All fields are required.")
	})
}

func TestHandler_Profile(t *testing.T) {
	t.Parallel()

	t.Run("err. no session", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		e := newTestEcho()
		e.GET("/profile", h.Profile)

		r := httptest.NewRequest(http.MethodGet, "/profile", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, `{"error":"Not logged in"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("ok. user record", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			Profile(gomock.Any(), 5).
			Return(model.User{UserID: 5, Username: "alice", Email: "alice@example.com"}, nil)

		e := newTestEcho()
		withSession := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				sess, err := session.Get("session", c)
				require.NoError(t, err)
				sess.Values["user_id"] = 5
				return next(c)
			}
		}
		e.GET("/profile", h.Profile, withSession)

		r := httptest.NewRequest(http.MethodGet, "/profile", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"user_id":5,"username":"alice","email":"alice@example.com"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. user gone", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			Profile(gomock.Any(), 9).
			Return(model.User{}, errs.ErrNotFound)

		e := newTestEcho()
		withSession := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				sess, err := session.Get("session", c)
				require.NoError(t, err)
				sess.Values["user_id"] = 9
				return next(c)
			}
		}
		e.GET("/profile", h.Profile, withSession)

		r := httptest.NewRequest(http.MethodGet, "/profile", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"error":"User not found"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_PageRedirects(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		target       string
		expectedCode int
		expectedLoc  string
	}{
		{"dashboard without identity", "/dashboard", http.StatusFound, "/login"},
		{"dashboard without user_id", "/dashboard?username=alice", http.StatusFound, "/login"},
		{"browse without identity", "/browse", http.StatusFound, "/login"},
		{"issued_books without identity", "/issued_books", http.StatusFound, "/login"},
		{"dashboard with identity", "/dashboard?username=alice&user_id=5", http.StatusOK, ""},
		{"browse with identity", "/browse?username=alice&user_id=5", http.StatusOK, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			svc.EXPECT().IssuedBooks(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			e := newTestEcho()
			e.GET("/dashboard", h.Dashboard)
			e.GET("/browse", h.Browse)
			e.GET("/issued_books", h.IssuedBooks)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedLoc, w.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestHandler_IssueBook(t *testing.T) {
	t.Parallel()
	issueForm := url.Values{
		"username":   {"alice"},
		"user_id":    {"5"},
		"book_id":    {"7"},
		"book_name":  {"Dune"},
		"issue_date": {"2024-01-15"},
		"due_date":   {"2024-02-15"},
	}

	t.Run("ok. reports issue id", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			IssueBook(context.Background(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec model.IssuedBook) (int, error) {
				require.Equal(t, 5, rec.UserID)
				require.Equal(t, 7, rec.BookID)
				require.Equal(t, "Dune", rec.BookName)
				require.Equal(t, "2024-01-15", rec.IssueDate.Format("2006-01-02"))
				require.Equal(t, "2024-02-15", rec.DueDate.Format("2006-01-02"))
				return 42, nil
			})

		e := newTestEcho()
		e.POST("/issue", h.IssueBook)

		w := postForm(e, "/issue", issueForm)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Book issued successfully! Issue ID: 42")
	})

	t.Run("err. book not found", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			IssueBook(context.Background(), gomock.Any()).
			Return(0, errs.ErrBookNotFound)

		e := newTestEcho()
		e.POST("/issue", h.IssueBook)

		w := postForm(e, "/issue", issueForm)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Book not found.")
	})

	t.Run("err. missing fields", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		e := newTestEcho()
		e.POST("/issue", h.IssueBook)

		w := postForm(e, "/issue", url.Values{"username": {"alice"}})

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "All fields are required.")
	})

	t.Run("ok. event publish failure does not change the response", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandlerWithEvents(t, failingEventLog{})
		svc.EXPECT().
			IssueBook(context.Background(), gomock.Any()).
			Return(42, nil)

		e := newTestEcho()
		e.POST("/issue", h.IssueBook)

		w := postForm(e, "/issue", issueForm)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Book issued successfully! Issue ID: 42")
	})
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	borrowForm := url.Values{
		"user_id":   {"5"},
		"username":  {"alice"},
		"book_id":   {"7"},
		"book_name": {"Dune"},
	}

	t.Run("ok. redirect to issued books", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			BorrowBook(context.Background(), model.IssuedBook{UserID: 5, Username: "alice", BookID: 7, BookName: "Dune"}).
			Return(nil)

		e := newTestEcho()
		e.POST("/borrow", h.BorrowBook)

		w := postForm(e, "/borrow", borrowForm)

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/issued_books?user_id=5&username=alice", w.Header().Get(echo.HeaderLocation))
	})

	t.Run("err. insert failure", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			BorrowBook(context.Background(), gomock.Any()).
			Return(errors.New("db internal"))

		e := newTestEcho()
		e.POST("/borrow", h.BorrowBook)

		w := postForm(e, "/borrow", borrowForm)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "Failed to borrow book.", w.Body.String())
	})

	t.Run("ok. event publish failure does not change the response", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandlerWithEvents(t, failingEventLog{})
		svc.EXPECT().
			BorrowBook(context.Background(), model.IssuedBook{UserID: 5, Username: "alice", BookID: 7, BookName: "Dune"}).
			Return(nil)

		e := newTestEcho()
		e.POST("/borrow", h.BorrowBook)

		w := postForm(e, "/borrow", borrowForm)

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/issued_books?user_id=5&username=alice", w.Header().Get(echo.HeaderLocation))
	})
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	returnForm := url.Values{
		"user_id":  {"5"},
		"username": {"alice"},
		"book_id":  {"7"},
	}

	t.Run("ok. redirect", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			ReturnBook(context.Background(), 5, 7).
			Return(nil)

		e := newTestEcho()
		e.POST("/return", h.ReturnBook)

		w := postForm(e, "/return", returnForm)

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/issued_books?user_id=5&username=alice", w.Header().Get(echo.HeaderLocation))
	})

	t.Run("err. missing data", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		e := newTestEcho()
		e.POST("/return", h.ReturnBook)

		w := postForm(e, "/return", url.Values{"user_id": {"5"}})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Missing data.", w.Body.String())
	})

	t.Run("err. delete failure", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			ReturnBook(context.Background(), 5, 7).
			Return(errors.New("db internal"))

		e := newTestEcho()
		e.POST("/return", h.ReturnBook)

		w := postForm(e, "/return", returnForm)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "Failed to return book.", w.Body.String())
	})
}

func TestHandler_IssuedBooks(t *testing.T) {
	t.Parallel()

	t.Run("ok. renders merged rows", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			IssuedBooks(context.Background(), 5).
			Return([]model.IssuedBookView{
				{
					Book:      model.Book{BookID: 7, Title: "Dune", Author: "Herbert", Publisher: "Ace"},
					IssueDate: "15-01-2024",
					DueDate:   "15-02-2024",
				},
			}, nil)

		e := newTestEcho()
		e.GET("/issued_books", h.IssuedBooks)

		r := httptest.NewRequest(http.MethodGet, "/issued_books?username=alice&user_id=5", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Dune")
		require.Contains(t, w.Body.String(), "15-01-2024")
		require.Contains(t, w.Body.String(), "15-02-2024")
	})

	t.Run("ok. empty list", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			IssuedBooks(context.Background(), 5).
			Return([]model.IssuedBookView{}, nil)

		e := newTestEcho()
		e.GET("/issued_books", h.IssuedBooks)

		r := httptest.NewRequest(http.MethodGet, "/issued_books?username=alice&user_id=5", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "No books issued.")
	})

	t.Run("err. fetch failure", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestHandler(t)
		svc.EXPECT().
			IssuedBooks(context.Background(), 5).
			Return(nil, errors.New("db internal"))

		e := newTestEcho()
		e.GET("/issued_books", h.IssuedBooks)

		r := httptest.NewRequest(http.MethodGet, "/issued_books?username=alice&user_id=5", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "Internal Server Error", w.Body.String())
	})
}
