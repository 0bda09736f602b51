// Package export serializes finished campaign plans: a JSON document with
// the collected data and prompt script, and a CSV rendering of the
// execution timeline.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/campaignforge/internal/domain"
)

// Default export file names.
const (
	DefaultPlanFile     = "campaign_plan.json"
	DefaultTimelineFile = "campaign_timeline.csv"
)

// timestampLayout is the ISO-like layout recorded in generated_at.
const timestampLayout = "2006-01-02 15:04:05.000000"

// Plan is the JSON export document.
type Plan struct {
	CampaignData domain.CampaignData   `json:"campaign_data"`
	Prompts      []domain.PromptRecord `json:"prompts"`
	GeneratedAt  string                `json:"generated_at"`
}

// Exporter produces export documents. The clock is injectable so tests can
// pin generated_at; prompt and timeline generation themselves take no clock.
type Exporter struct {
	now func() time.Time
}

// NewExporter returns an Exporter stamping exports with the wall clock.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// NewExporterAt returns an Exporter with a fixed clock.
func NewExporterAt(now func() time.Time) *Exporter {
	return &Exporter{now: now}
}

// Plan assembles the export document for the given campaign.
func (e *Exporter) Plan(data domain.CampaignData, prompts []domain.PromptRecord) Plan {
	return Plan{
		CampaignData: data,
		Prompts:      prompts,
		GeneratedAt:  e.now().Format(timestampLayout),
	}
}

// WritePlan writes the indented JSON plan export to w.
func (e *Exporter) WritePlan(w io.Writer, data domain.CampaignData, prompts []domain.PromptRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e.Plan(data, prompts)); err != nil {
		return fmt.Errorf("encoding campaign plan: %w", err)
	}
	return nil
}

// timelineHeader is the fixed CSV header row.
var timelineHeader = []string{"Week", "Phase", "Platform", "Task", "Status"}

// WriteTimelineCSV writes the timeline as CSV, one row per TimelineRow in
// generator order.
func WriteTimelineCSV(w io.Writer, rows []domain.TimelineRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeader); err != nil {
		return fmt.Errorf("writing timeline header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Week, r.Phase, r.Platform, r.Task, r.Status}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing timeline row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing timeline csv: %w", err)
	}
	return nil
}
