package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/logger"
)

const exportLayout = "20060102-150405"

// Exporter writes timestamped copies of the master report into Dir.
type Exporter struct {
	Dir    string
	Render func() ([]byte, error)
	now    func() time.Time
}

func NewExporter(dir string, render func() ([]byte, error)) *Exporter {
	return &Exporter{Dir: dir, Render: render, now: time.Now}
}

// Export renders and writes one report. It returns the written path.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pdf, err := e.Render()
	if err != nil {
		return "", fmt.Errorf("render master report: %w", err)
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure report dir: %w", err)
	}
	name := fmt.Sprintf("Master_Recruitment_Report_%s.pdf", e.now().UTC().Format(exportLayout))
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	logger.Info().Str("path", path).Int("bytes", len(pdf)).Msg("master report exported")
	return path, nil
}

// Job adapts Export to SetReportFunction.
func (e *Exporter) Job(ctx context.Context) error {
	_, err := e.Export(ctx)
	return err
}
