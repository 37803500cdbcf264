package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/prompts"
)

// Conversationalist produces the recruiter's next message. Failures are
// expected to come back as display text, not errors.
type Conversationalist interface {
	Converse(ctx context.Context, transcript []history.Message) string
}

// Finalizer persists a finished transcript.
type Finalizer interface {
	Save(transcript []history.Message) error
}

// Turn is the outcome of one accepted candidate message.
type Turn struct {
	Reply string
	Ended bool
}

// Interview drives sessions through the Interviewing state.
type Interview struct {
	conv   Conversationalist
	fin    Finalizer
	marker string
}

// NewInterview builds an Interview. An empty marker means prompts.DefaultMarker.
func NewInterview(conv Conversationalist, fin Finalizer, marker string) *Interview {
	if marker == "" {
		marker = prompts.DefaultMarker
	}
	return &Interview{conv: conv, fin: fin, marker: marker}
}

// Submit appends text, asks for exactly one reply and appends it. A reply
// carrying the marker is stored without it, the transcript is saved and only
// then does the session end. When the save fails the session keeps
// interviewing and the error is returned alongside the reply.
func (iv *Interview) Submit(ctx context.Context, s *Session, text string) (Turn, error) {
	s.turn.Lock()
	defer s.turn.Unlock()

	state, tr := s.current()
	if state != Interviewing {
		return Turn{}, ErrNotInterviewing
	}
	if strings.TrimSpace(text) == "" {
		return Turn{}, ErrEmptyInput
	}

	tr.AppendUser(text)
	reply := iv.conv.Converse(ctx, tr.Messages())

	if !strings.Contains(reply, iv.marker) {
		tr.AppendAssistant(reply)
		return Turn{Reply: reply}, nil
	}

	clean := strings.TrimSpace(strings.ReplaceAll(reply, iv.marker, ""))
	tr.AppendAssistant(clean)
	if err := iv.fin.Save(history.WithoutSystem(tr.Messages())); err != nil {
		return Turn{Reply: clean}, fmt.Errorf("save candidate: %w", err)
	}
	s.setState(Ended)
	return Turn{Reply: clean, Ended: true}, nil
}
