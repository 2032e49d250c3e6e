package types

import "strings"

// ExperienceItem is one job entry. Title is the only field required to exist;
// every other field uses the empty string to mean "unknown", never a nil
// sentinel. Items may be enriched after creation (title or company inferred
// from achievement text) and may be dropped by deduplication.
type ExperienceItem struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"` // the literal "Present" for current roles
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// DedupeKey returns the case-folded identity tuple used by the deduplication
// pass: two items with the same key are considered the same job.
func (e *ExperienceItem) DedupeKey() string {
	return strings.ToLower(strings.Join([]string{e.Title, e.Company, e.StartDate, e.EndDate}, "|"))
}

// IsCurrent reports whether the item describes an ongoing role.
func (e *ExperienceItem) IsCurrent() bool {
	return strings.EqualFold(e.EndDate, "present") || strings.EqualFold(e.EndDate, "current")
}
