package storage

import "github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"

// Record is one completed screening. Name holds a Fernet token; the other
// fields are display text. Records are never mutated once appended.
type Record struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Experience string            `json:"experience"`
	Position   string            `json:"position"`
	TechStack  string            `json:"tech_stack"`
	Date       string            `json:"date"`
	Transcript []history.Message `json:"transcript"`
}

// Store persists candidate records as a whole-array collection.
// LoadAll returns records in append order. There is no per-record update or
// delete; Reset erases everything.
type Store interface {
	Append(rec Record) error
	LoadAll() ([]Record, error)
	Reset() error
}
