package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExporterWritesTimestampedReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	e := NewExporter(dir, func() ([]byte, error) { return []byte("%PDF-1.3 test"), nil })
	e.now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) }

	path, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(dir, "Master_Recruitment_Report_20260506-070809.pdf")
	if path != want {
		t.Fatalf("want %s, got %s", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "%PDF-1.3 test" {
		t.Fatalf("unexpected file content: %q %v", data, err)
	}
}

func TestExporterRenderFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	e := NewExporter(dir, func() ([]byte, error) { return nil, errors.New("boom") })
	if err := e.Job(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written on failure")
	}
}

func TestExporterCancelledContext(t *testing.T) {
	called := false
	e := NewExporter(t.TempDir(), func() ([]byte, error) { called = true; return nil, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Export(ctx); err == nil || called {
		t.Fatalf("cancelled export must not render")
	}
}

func TestSchedulerStart(t *testing.T) {
	s := New("*/5 * * * *")
	if err := s.Start(); err != nil {
		t.Fatalf("start without job: %v", err)
	}
	if s.IsRunning() {
		t.Fatalf("no job registered, scheduler should be idle")
	}

	s.SetReportFunction(func(context.Context) error { return nil })
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("job should be registered")
	}
	s.Stop()
}

func TestSchedulerBadSpec(t *testing.T) {
	s := New("not a cron spec")
	s.SetReportFunction(func(context.Context) error { return nil })
	if err := s.Start(); err == nil {
		t.Fatalf("expected error for malformed spec")
	}
}
