package model

import "time"

// DateFormat is the calendar date layout used by milestone and custom field
// date values
const DateFormat = "2006-01-02"

// Milestone represents a single project milestone. Milestones are owned by
// the ProjectMetadata that contains them.
type Milestone struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	Description string `json:"description,omitempty"`
}

// MilestoneStats is derived from a milestone list on every read and write.
// It is never stored.
type MilestoneStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
}

// ComputeMilestoneStats derives completion and deadline stats for the given
// milestones relative to now. Milestones whose date does not parse are
// counted in Total only.
func ComputeMilestoneStats(milestones []Milestone, now time.Time) MilestoneStats {
	stats := MilestoneStats{Total: len(milestones)}

	for _, m := range milestones {
		if m.Completed {
			stats.Completed++
			continue
		}

		date, err := time.Parse(DateFormat, m.Date)
		if err != nil {
			continue
		}

		if date.After(now) {
			stats.Upcoming++
		} else {
			stats.Overdue++
		}
	}

	return stats
}
