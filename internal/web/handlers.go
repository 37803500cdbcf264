package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/candidate"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/session"
)

const (
	accessDenied = "Access Denied"
	saveFailed   = "We could not save your interview. Please try again in a moment."
	errSaveCode  = "save"
)

type Page struct {
	Admin      bool
	LoginError string
}

type candidatePage struct {
	Page
	State         string
	Messages      []history.Message
	ConsentNotice string
	Error         string
}

type dashboardPage struct {
	Page
	Total      int
	Today      int
	Candidates []candidate.Summary
}

type detailPage struct {
	Page
	Candidate  candidate.Summary
	Transcript []string
	Analysis   string
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (s *Server) index(c *fiber.Ctx) error {
	sess := sessionOf(c)
	if sess.IsAdmin() {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	var msg string
	if c.Query("error") == errSaveCode {
		msg = saveFailed
	}
	return s.renderCandidate(c, fiber.StatusOK, sess, "", msg)
}

func (s *Server) renderCandidate(c *fiber.Ctx, status int, sess *session.Session, loginErr, errMsg string) error {
	msgs := make([]history.Message, 0)
	for _, m := range sess.Transcript() {
		if m.Role == history.RoleUser || m.Role == history.RoleAssistant {
			msgs = append(msgs, m)
		}
	}
	return s.render(c, status, "candidate.html", candidatePage{
		Page:          Page{LoginError: loginErr},
		State:         sess.State().String(),
		Messages:      msgs,
		ConsentNotice: s.deps.ConsentNotice,
		Error:         errMsg,
	})
}

func (s *Server) consent(c *fiber.Ctx) error {
	if err := sessionOf(c).GiveConsent(); err != nil && !errors.Is(err, session.ErrInvalidTransition) {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) chat(c *fiber.Ctx) error {
	sess := sessionOf(c)
	turn, err := s.deps.Interview.Submit(c.UserContext(), sess, c.FormValue("message"))
	switch {
	case err == nil:
		if turn.Ended {
			logger.Info().Str("session", sessionID(c)).Msg("interview completed")
		}
	case errors.Is(err, session.ErrEmptyInput), errors.Is(err, session.ErrNotInterviewing):
	default:
		logger.Error().Err(err).Str("session", sessionID(c)).Msg("failed to finish interview")
		return c.Redirect("/?error="+errSaveCode, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) restart(c *fiber.Ctx) error {
	sessionOf(c).Reset(s.deps.Sessions.Greeting())
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) login(c *fiber.Ctx) error {
	sess := sessionOf(c)
	if !s.deps.Auth.Check(c.FormValue("password")) {
		logger.Warn().Str("session", sessionID(c)).Msg("admin login rejected")
		return s.renderCandidate(c, fiber.StatusUnauthorized, sess, accessDenied, "")
	}
	sess.SetAdmin(true)
	logger.Info().Str("session", sessionID(c)).Msg("admin login")
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (s *Server) logout(c *fiber.Ctx) error {
	sessionOf(c).SetAdmin(false)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) dashboard(c *fiber.Ctx) error {
	list, err := s.deps.Candidates.List()
	if err != nil {
		return err
	}
	intake, err := s.deps.Candidates.Intake(s.deps.Candidates.Today())
	if err != nil {
		return err
	}
	return s.render(c, fiber.StatusOK, "dashboard.html", dashboardPage{
		Page:       Page{Admin: true},
		Total:      len(list),
		Today:      intake.TotalCandidates,
		Candidates: list,
	})
}

func (s *Server) exportAll(c *fiber.Ctx) error {
	pdf, err := s.deps.Candidates.BulkReport()
	if err != nil {
		return err
	}
	c.Attachment(candidate.BulkReportName)
	return c.Send(pdf)
}

func (s *Server) resetStore(c *fiber.Ctx) error {
	if err := s.deps.Candidates.Reset(); err != nil {
		return err
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

func (s *Server) detail(c *fiber.Ctx) error {
	sum, err := s.lookup(c)
	if err != nil {
		return err
	}
	return s.renderDetail(c, sum, "")
}

func (s *Server) exportOne(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.ErrNotFound
	}
	pdf, name, err := s.deps.Candidates.SingleReport(index)
	if errors.Is(err, candidate.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}
	c.Attachment(name)
	return c.Send(pdf)
}

func (s *Server) analyze(c *fiber.Ctx) error {
	sum, err := s.lookup(c)
	if err != nil {
		return err
	}
	analysis := s.deps.Analyst.Analyze(c.UserContext(), sum.Transcript)
	return s.renderDetail(c, sum, analysis)
}

func (s *Server) lookup(c *fiber.Ctx) (candidate.Summary, error) {
	index, err := c.ParamsInt("index")
	if err != nil {
		return candidate.Summary{}, fiber.ErrNotFound
	}
	sum, err := s.deps.Candidates.Get(index)
	if errors.Is(err, candidate.ErrNotFound) {
		return candidate.Summary{}, fiber.ErrNotFound
	}
	return sum, err
}

func (s *Server) renderDetail(c *fiber.Ctx, sum candidate.Summary, analysis string) error {
	lines := make([]string, 0, len(sum.Transcript))
	for _, m := range sum.Transcript {
		lines = append(lines, strings.ToUpper(m.Role)+": "+m.Content)
	}
	return s.render(c, fiber.StatusOK, "detail.html", detailPage{
		Page:       Page{Admin: true},
		Candidate:  sum,
		Transcript: lines,
		Analysis:   analysis,
	})
}
