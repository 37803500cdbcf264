package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
)

const (
	LabelName       = "Full Name"
	LabelExperience = "Years of Experience"
	LabelPosition   = "Desired Position"
	LabelTechStack  = "Tech Stack"
)

const (
	DefaultName       = "Candidate"
	DefaultExperience = "N/A"
	DefaultPosition   = "Developer"
	DefaultTechStack  = "Technical"
)

// summaryMarker identifies the assistant message that recaps the collected fields.
const summaryMarker = LabelName + ":"

var patterns = map[string]*regexp.Regexp{
	LabelName:       labelPattern(LabelName),
	LabelExperience: labelPattern(LabelExperience),
	LabelPosition:   labelPattern(LabelPosition),
	LabelTechStack:  labelPattern(LabelTechStack),
}

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:\s*(.*)`)
}

// Profile holds display-ready values. Name is plaintext; encrypting it is
// the caller's job.
type Profile struct {
	Name       string
	Experience string
	Position   string
	TechStack  string
}

// FromTranscript picks the source text and extracts a profile from it.
func FromTranscript(msgs []history.Message) Profile {
	return FromText(SourceText(msgs))
}

// SourceText returns the latest assistant message mentioning "Full Name:",
// else the second message of the transcript, else "".
func SourceText(msgs []history.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m.Role == history.RoleAssistant && strings.Contains(m.Content, summaryMarker) {
			return m.Content
		}
	}
	if len(msgs) > 1 {
		return msgs[1].Content
	}
	return ""
}

// FromText never fails: absent labels yield the defaults.
func FromText(text string) Profile {
	name := orDefault(Field(LabelName, text), DefaultName)
	exp := Field(LabelExperience, text)
	pos := orDefault(Field(LabelPosition, text), DefaultPosition)
	stack := orDefault(Field(LabelTechStack, text), DefaultTechStack)

	return Profile{
		Name:       titleCase(name),
		Experience: experience(exp),
		Position:   titleCase(pos),
		TechStack:  titleCase(stack),
	}
}

// Field returns the trimmed rest of the first line carrying "<label>:", or "".
func Field(label, text string) string {
	re, ok := patterns[label]
	if !ok {
		re = labelPattern(label)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func experience(raw string) string {
	if raw == "" {
		return DefaultExperience
	}
	if isDigits(raw) {
		return raw + " Years"
	}
	return raw
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	// cases.Caser keeps state, so a fresh one per call.
	return cases.Title(language.Und).String(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
