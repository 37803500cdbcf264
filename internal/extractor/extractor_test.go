package extractor

import (
	"testing"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
)

func TestFromTextFullSummary(t *testing.T) {
	text := `Thanks! Here is what I have:
Full Name: jane doe
Email: jane@example.com
Years of Experience: 5
Desired Position: backend engineer
Tech Stack: go, postgres, kubernetes`

	p := FromText(text)
	if p.Name != "Jane Doe" {
		t.Fatalf("name: %q", p.Name)
	}
	if p.Experience != "5 Years" {
		t.Fatalf("experience: %q", p.Experience)
	}
	if p.Position != "Backend Engineer" {
		t.Fatalf("position: %q", p.Position)
	}
	if p.TechStack != "Go, Postgres, Kubernetes" {
		t.Fatalf("tech stack: %q", p.TechStack)
	}
}

func TestFromTextDefaults(t *testing.T) {
	p := FromText("Full Name: Jane Doe\nTech Stack: Python")
	if p.Name != "Jane Doe" {
		t.Fatalf("name: %q", p.Name)
	}
	if p.Position != DefaultPosition {
		t.Fatalf("missing position should default to %q, got %q", DefaultPosition, p.Position)
	}
	if p.Experience != DefaultExperience {
		t.Fatalf("missing experience should default to %q, got %q", DefaultExperience, p.Experience)
	}

	empty := FromText("")
	if empty.Name != DefaultName || empty.TechStack != DefaultTechStack {
		t.Fatalf("unexpected defaults: %+v", empty)
	}
}

func TestExperienceLiteral(t *testing.T) {
	cases := map[string]string{
		"Years of Experience: 5":         "5 Years",
		"Years of Experience: 12":        "12 Years",
		"Years of Experience: several":   "several",
		"Years of Experience: 3.5 years": "3.5 years",
		"years of experience:   7  ":     "7 Years",
	}
	for in, want := range cases {
		if got := FromText(in).Experience; got != want {
			t.Fatalf("%q: want %q, got %q", in, want, got)
		}
	}
}

func TestFieldCaseInsensitiveAndLineBound(t *testing.T) {
	text := "FULL NAME:   Ada Lovelace  \ndesired position: analyst"
	if got := Field(LabelName, text); got != "Ada Lovelace" {
		t.Fatalf("name: %q", got)
	}
	if got := Field(LabelPosition, text); got != "analyst" {
		t.Fatalf("position: %q", got)
	}
	if got := Field(LabelTechStack, text); got != "" {
		t.Fatalf("absent label should be empty, got %q", got)
	}
}

func TestSourceTextPicksLatestSummary(t *testing.T) {
	msgs := []history.Message{
		{Role: history.RoleAssistant, Content: "Hello! Please share your details."},
		{Role: history.RoleUser, Content: "Full Name: Not From Here"},
		{Role: history.RoleAssistant, Content: "Full Name: Old Summary"},
		{Role: history.RoleUser, Content: "correction"},
		{Role: history.RoleAssistant, Content: "Full Name: New Summary\nDesired Position: SRE"},
		{Role: history.RoleAssistant, Content: "Goodbye!"},
	}
	p := FromTranscript(msgs)
	if p.Name != "New Summary" || p.Position != "Sre" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestSourceTextFallsBackToSecondMessage(t *testing.T) {
	msgs := []history.Message{
		{Role: history.RoleAssistant, Content: "Hello!"},
		{Role: history.RoleUser, Content: "full name: sam lee, tech stack: rust"},
		{Role: history.RoleAssistant, Content: "Thanks"},
	}
	if got := SourceText(msgs); got != msgs[1].Content {
		t.Fatalf("want second message, got %q", got)
	}
	if got := SourceText(msgs[:1]); got != "" {
		t.Fatalf("single message transcript should give empty source, got %q", got)
	}
}
