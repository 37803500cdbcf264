package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/history"
	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
)

const (
	singleTitle = "Technical Interview Report"
	font        = "Arial"
)

// DecryptFunc turns a stored name into display text.
type DecryptFunc func(string) string

// RenderSingle renders one transcript: a centred title, then each message
// under a bold CANDIDATE/RECRUITER label.
func RenderSingle(transcript []history.Message) ([]byte, error) {
	pdf := newDocument()
	pdf.AddPage()
	pdf.SetFont(font, "B", 16)
	pdf.CellFormat(200, 10, singleTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, m := range transcript {
		role := "RECRUITER"
		if m.Role == history.RoleUser {
			role = "CANDIDATE"
		}
		pdf.SetFont(font, "B", 10)
		pdf.MultiCell(0, 8, role+":", "", "L", false)
		pdf.SetFont(font, "", 10)
		pdf.MultiCell(0, 6, Latin1(m.Content), "", "L", false)
		pdf.Ln(2)
	}
	return output(pdf)
}

// RenderBulk renders every record on its own page with a shaded header.
func RenderBulk(records []storage.Record, decrypt DecryptFunc) ([]byte, error) {
	if decrypt == nil {
		decrypt = func(s string) string { return s }
	}
	pdf := newDocument()

	for _, rec := range records {
		pdf.AddPage()
		name := decrypt(rec.Name)

		pdf.SetFont(font, "B", 14)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 12, Latin1("Candidate: "+name), "", 1, "", true, 0, "")
		pdf.SetFont(font, "I", 10)
		pdf.CellFormat(0, 8, Latin1(fmt.Sprintf("Role: %s | Exp: %s", rec.Position, rec.Experience)), "", 1, "", false, 0, "")
		pdf.Ln(5)

		pdf.SetFont(font, "", 9)
		for _, m := range rec.Transcript {
			role := "AI"
			if m.Role == history.RoleUser {
				role = "USER"
			}
			pdf.MultiCell(0, 5, Latin1(role+": "+m.Content), "", "L", false)
			pdf.Ln(1)
		}
	}
	return output(pdf)
}

// Latin1 downgrades s to ISO-8859-1 bytes for the core fonts. Each code point
// outside Latin-1 becomes a single '?'.
func Latin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	return pdf
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
