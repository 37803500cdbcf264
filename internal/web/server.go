package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/auth"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	sessionCookie = "talentscout_session"
	localSession  = "session"
	localID       = "session_id"
)

// Analyst produces an AI assessment of a stored transcript.
type Analyst interface {
	Analyze(ctx context.Context, transcript []history.Message) string
}

type Deps struct {
	Sessions      *session.Manager
	Interview     *session.Interview
	Candidates    *candidate.Service
	Analyst       Analyst
	Auth          auth.Checker
	ConsentNotice string
}

type Server struct {
	deps Deps
	tmpl *template.Template
	app  *fiber.App
}

func New(deps Deps) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{deps: deps, tmpl: tmpl}
	s.app = fiber.New(fiber.Config{
		AppName:               "talentscout",
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          2 * time.Minute,
	})
	s.app.Use(recover.New())
	s.app.Use(requestLogger)
	s.routes()
	return s, nil
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	logger.Info().Str("addr", addr).Msg("http server listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.health)

	app := s.app.Group("", s.withSession)
	app.Get("/", s.index)
	app.Post("/consent", s.consent)
	app.Post("/chat", s.chat)
	app.Post("/restart", s.restart)
	app.Post("/admin/login", s.login)
	app.Post("/admin/logout", s.logout)

	admin := app.Group("/admin", s.requireAdmin)
	admin.Get("/", s.dashboard)
	admin.Get("/export", s.exportAll)
	admin.Post("/reset", s.resetStore)
	admin.Get("/candidates/:index", s.detail)
	admin.Get("/candidates/:index/pdf", s.exportOne)
	admin.Post("/candidates/:index/analysis", s.analyze)
}

// withSession attaches the caller's session, issuing a fresh cookie when the
// old one is missing or has been evicted.
func (s *Server) withSession(c *fiber.Ctx) error {
	id := c.Cookies(sessionCookie)
	sess, ok := s.deps.Sessions.Get(id)
	if id == "" || !ok {
		id = uuid.NewString()
		sess = s.deps.Sessions.GetOrCreate(id)
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals(localSession, sess)
	c.Locals(localID, id)
	return c.Next()
}

func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if !sessionOf(c).IsAdmin() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}

func sessionOf(c *fiber.Ctx) *session.Session {
	return c.Locals(localSession).(*session.Session)
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(localID).(string)
	return id
}

func (s *Server) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("render failed")
		return fiber.ErrInternalServerError
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("http request")
	return err
}
