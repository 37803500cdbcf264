package history

import (
	"sync"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/llm"
)

const (
	RoleSystem    = llm.RoleSystem
	RoleUser      = llm.RoleUser
	RoleAssistant = llm.RoleAssistant
)

// Message is one transcript entry as persisted in the candidate store.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is an append-only, insertion-ordered list of messages.
// Messages are never edited or removed; Messages returns a copy.
type Transcript struct {
	mu   sync.RWMutex
	msgs []Message
}

func NewTranscript(initial ...Message) *Transcript {
	t := &Transcript{}
	t.msgs = append(t.msgs, initial...)
	return t
}

func (t *Transcript) AppendUser(content string) {
	t.append(Message{Role: RoleUser, Content: content})
}

func (t *Transcript) AppendAssistant(content string) {
	t.append(Message{Role: RoleAssistant, Content: content})
}

func (t *Transcript) append(msg Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, msg)
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.msgs)
}

func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// WithoutSystem drops system-role messages, keeping order.
func WithoutSystem(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role != RoleSystem {
			out = append(out, m)
		}
	}
	return out
}

// ToLLM converts transcript messages for a completion request.
func ToLLM(msgs []Message) []llm.Message {
	out := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
