package candidate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/analytics"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/extractor"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/report"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
)

var ErrNotFound = errors.New("candidate not found")

const (
	idLayout   = "20060102150405"
	dateLayout = "2006-01-02 15:04"
)

// Dashboard fallbacks for records written without a value.
const (
	fallbackName      = "New Candidate"
	fallbackStack     = "Technical"
	fallbackDate      = "Unknown Date"
	fallbackUnset     = "Not Specified"
	BulkReportName    = "Master_Recruitment_Report.pdf"
	singleReportTitle = "%s_Report.pdf"
)

// Cipher encrypts and decrypts the name field.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) string
}

// Summary is a record prepared for display. Index is the record's position
// in the store and stays valid until the store is reset.
type Summary struct {
	Index      int
	ID         string
	Name       string
	Experience string
	Position   string
	TechStack  string
	Date       string
	Transcript []history.Message
}

type Service struct {
	store  storage.Store
	cipher Cipher
	now    func() time.Time
}

func NewService(store storage.Store, cipher Cipher) *Service {
	return &Service{store: store, cipher: cipher, now: time.Now}
}

// Save extracts the profile from a finished transcript, encrypts the name
// and appends the record. System messages are never stored.
func (s *Service) Save(transcript []history.Message) error {
	msgs := history.WithoutSystem(transcript)
	p := extractor.FromTranscript(msgs)

	name, err := s.cipher.Encrypt(p.Name)
	if err != nil {
		return fmt.Errorf("encrypt name: %w", err)
	}
	now := s.now()
	rec := storage.Record{
		ID:         now.Format(idLayout),
		Name:       name,
		Experience: p.Experience,
		Position:   p.Position,
		TechStack:  p.TechStack,
		Date:       now.Format(dateLayout),
		Transcript: msgs,
	}
	if err := s.store.Append(rec); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	logger.Info().Str("record", rec.ID).Int("messages", len(msgs)).Msg("candidate saved")
	return nil
}

// List returns display summaries, newest first.
func (s *Service) List() ([]Summary, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	out := make([]Summary, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, s.summarize(i, records[i]))
	}
	return out, nil
}

// Records returns the raw records in store order.
func (s *Service) Records() ([]storage.Record, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return records, nil
}

// Get returns the summary of the record at index (store order).
func (s *Service) Get(index int) (Summary, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return Summary{}, fmt.Errorf("load records: %w", err)
	}
	if index < 0 || index >= len(records) {
		return Summary{}, ErrNotFound
	}
	return s.summarize(index, records[index]), nil
}

func (s *Service) Count() (int, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("load records: %w", err)
	}
	return len(records), nil
}

// Intake reports how many candidates were screened on day.
func (s *Service) Intake(day time.Time) (*analytics.DailyStats, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeDailyIntake(records, day), nil
}

// Today is the local calendar day used for record dates.
func (s *Service) Today() time.Time { return s.now() }

// Reset erases every record.
func (s *Service) Reset() error {
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	logger.Warn().Msg("candidate store reset")
	return nil
}

// BulkReport renders every record in store order with decrypted names.
func (s *Service) BulkReport() ([]byte, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	return report.RenderBulk(records, s.cipher.Decrypt)
}

// SingleReport renders the record at index and suggests a file name for it.
func (s *Service) SingleReport(index int) ([]byte, string, error) {
	sum, err := s.Get(index)
	if err != nil {
		return nil, "", err
	}
	pdf, err := report.RenderSingle(sum.Transcript)
	if err != nil {
		return nil, "", err
	}
	return pdf, ReportFileName(sum.Name), nil
}

// ReportFileName is "<name>_Report.pdf" with path separators removed.
func ReportFileName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\r', '\n':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf(singleReportTitle, clean)
}

func (s *Service) summarize(index int, rec storage.Record) Summary {
	return Summary{
		Index:      index,
		ID:         rec.ID,
		Name:       orDefault(s.cipher.Decrypt(rec.Name), fallbackName),
		Experience: orDefault(rec.Experience, fallbackUnset),
		Position:   orDefault(rec.Position, fallbackUnset),
		TechStack:  orDefault(rec.TechStack, fallbackStack),
		Date:       orDefault(rec.Date, fallbackDate),
		Transcript: rec.Transcript,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
