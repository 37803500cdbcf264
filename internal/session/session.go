package session

import (
	"errors"
	"sync"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrNotInterviewing   = errors.New("session is not interviewing")
	ErrEmptyInput        = errors.New("empty input")
)

type State int

const (
	AwaitingConsent State = iota
	Interviewing
	Ended
)

func (s State) String() string {
	switch s {
	case AwaitingConsent:
		return "awaiting_consent"
	case Interviewing:
		return "interviewing"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Session is one candidate's conversation. State and transcript are guarded
// by mu; turn serialises whole interview turns so a session never has two
// completion requests in flight.
type Session struct {
	turn sync.Mutex

	mu         sync.Mutex
	state      State
	transcript *history.Transcript
	admin      bool
}

// New starts a session awaiting consent with greeting as the only message.
func New(greeting string) *Session {
	return &Session{
		state:      AwaitingConsent,
		transcript: greetingTranscript(greeting),
	}
}

func greetingTranscript(greeting string) *history.Transcript {
	return history.NewTranscript(history.Message{Role: history.RoleAssistant, Content: greeting})
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the messages so far.
func (s *Session) Transcript() []history.Message {
	s.mu.Lock()
	tr := s.transcript
	s.mu.Unlock()
	return tr.Messages()
}

func (s *Session) GiveConsent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != AwaitingConsent {
		return ErrInvalidTransition
	}
	s.state = Interviewing
	return nil
}

// Reset discards the conversation and admin flag and waits for consent again.
// Whatever was already persisted is left alone.
func (s *Session) Reset(greeting string) {
	s.turn.Lock()
	defer s.turn.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = AwaitingConsent
	s.transcript = greetingTranscript(greeting)
	s.admin = false
}

func (s *Session) SetAdmin(admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

func (s *Session) current() (State, *history.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.transcript
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}
