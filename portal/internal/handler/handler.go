package handler

import (
	"net/http"

	md "github.com/Astemirdum/library-portal/pkg/middleware"
	"github.com/Astemirdum/library-portal/pkg/validate"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const sessionName = "session"

type Handler struct {
	portalSvc PortalService
	events    EventLog
	secret    string
	log       *zap.Logger
}

func New(portalSvc PortalService, events EventLog, sessionSecret string, log *zap.Logger) *Handler {
	h := &Handler{
		portalSvc: portalSvc,
		events:    events,
		secret:    sessionSecret,
		log:       log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		appRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	e.Renderer = NewRenderer()

	app := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(appRPS),
		session.Middleware(sessions.NewCookieStore([]byte(h.secret))),
	)

	app.GET("/", h.Home)
	app.GET("/signup", h.SignupForm)
	app.GET("/login", h.LoginForm)
	app.GET("/dashboard", h.Dashboard)
	app.GET("/browse", h.Browse)
	app.GET("/return", h.ReturnForm)
	app.GET("/profile", h.Profile)
	app.GET("/search", h.SearchBooks)
	app.GET("/issued_books", h.IssuedBooks)

	app.POST("/signup", h.SignUp)
	app.POST("/login", h.Login)
	app.POST("/issue", h.IssueBook)
	app.POST("/borrow", h.BorrowBook)
	app.POST("/return", h.ReturnBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
