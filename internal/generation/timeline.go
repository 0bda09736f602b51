package generation

import (
	"fmt"

	"github.com/alexanderramin/campaignforge/internal/domain"
)

// StatusPlanned is the initial status of every generated timeline task.
const StatusPlanned = "Planned"

// GenerateTimeline projects selected phases and platforms onto a
// week-indexed task table: one row per phase x platform pair, in row-major
// order (phases outer, platforms inner, both in selection order). The week
// number is tied to the phase position, not to calendar dates or the
// declared campaign duration — platforms within a phase share a week.
// Downstream consumers rely on that numbering, so it must not be reworked
// into a duration-aware schedule.
//
// Either input being empty yields an empty table.
func GenerateTimeline(phases, platforms []string) []domain.TimelineRow {
	if len(phases) == 0 || len(platforms) == 0 {
		return nil
	}

	rows := make([]domain.TimelineRow, 0, len(phases)*len(platforms))
	for i, phase := range phases {
		for _, platform := range platforms {
			rows = append(rows, domain.TimelineRow{
				Week:     fmt.Sprintf("Week %d", i+1),
				Phase:    phase,
				Platform: platform,
				Task:     fmt.Sprintf("Create %s content for %s", platform, phase),
				Status:   StatusPlanned,
			})
		}
	}
	return rows
}
