package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sreekeshvk/talentscout-ai-recruiter/internal/storage"
)

const dayLayout = "2006-01-02"

// DailyStats summarises the candidates screened on one day.
type DailyStats struct {
	Date            string         `json:"date"`
	TotalCandidates int            `json:"total_candidates"`
	ByPosition      map[string]int `json:"by_position"`
	ByTechnology    map[string]int `json:"by_technology"`
}

// AnalyzeDailyIntake counts records whose date falls on targetDate. Records
// without a parsable date are ignored.
func AnalyzeDailyIntake(records []storage.Record, targetDate time.Time) *DailyStats {
	day := targetDate.Format(dayLayout)
	stats := &DailyStats{
		Date:         day,
		ByPosition:   make(map[string]int),
		ByTechnology: make(map[string]int),
	}

	for _, rec := range records {
		if len(rec.Date) < len(dayLayout) || rec.Date[:len(dayLayout)] != day {
			continue
		}
		stats.TotalCandidates++
		if rec.Position != "" {
			stats.ByPosition[rec.Position]++
		}
		for _, tech := range strings.Split(rec.TechStack, ",") {
			if tech = strings.TrimSpace(tech); tech != "" {
				stats.ByTechnology[tech]++
			}
		}
	}
	return stats
}

// GenerateReportSummary renders the stats as plain text, busiest entries first.
func (ds *DailyStats) GenerateReportSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate intake for %s: %d screened\n", ds.Date, ds.TotalCandidates)
	if len(ds.ByPosition) > 0 {
		b.WriteString("\nBy position:\n")
		for _, kv := range ranked(ds.ByPosition) {
			fmt.Fprintf(&b, "- %s: %d\n", kv.key, kv.count)
		}
	}
	if len(ds.ByTechnology) > 0 {
		b.WriteString("\nBy technology:\n")
		for _, kv := range ranked(ds.ByTechnology) {
			fmt.Fprintf(&b, "- %s: %d\n", kv.key, kv.count)
		}
	}
	return b.String()
}

func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type entry struct {
	key   string
	count int
}

func ranked(m map[string]int) []entry {
	out := make([]entry, 0, len(m))
	for k, v := range m {
		out = append(out, entry{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}
