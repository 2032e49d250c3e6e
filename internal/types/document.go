// Package types provides type definitions for the structured resume document model.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Document is the top-level result of one parse call. It is created once per
// parse and is immutable after construction; post-processing rebuilds the
// section list before the Document is assembled.
type Document struct {
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
	// RawText preserves the original input for fallback and debugging.
	RawText string `json:"raw_text,omitempty"`
}

// Metadata describes a single parse of a resume text.
type Metadata struct {
	ParsedAt     time.Time       `json:"parsed_at"`
	WordCount    int             `json:"word_count"`
	SourceFormat string          `json:"source_format"` // "pdf", "text" or "html"
	Formatting   FormattingPrefs `json:"formatting"`
}

// FormattingPrefs captures formatting conventions detected in the source text,
// used by downstream export collaborators to regenerate a similar style.
type FormattingPrefs struct {
	BulletChar         string `json:"bullet_char,omitempty"`
	AllCapsHeadings    bool   `json:"all_caps_headings"`
	UsesPipeSeparators bool   `json:"uses_pipe_separators"`
}

// SectionByKind returns the first section of the given kind, or nil.
// After post-processing at most one section per kind exists.
func (d *Document) SectionByKind(kind SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}

// ExperienceItems returns all experience items across the document in order.
func (d *Document) ExperienceItems() []ExperienceItem {
	var items []ExperienceItem
	for i := range d.Sections {
		for j := range d.Sections[i].Blocks {
			if b := d.Sections[i].Blocks[j]; b.Kind == BlockExperience && b.Experience != nil {
				items = append(items, *b.Experience)
			}
		}
	}
	return items
}

// EducationItems returns all education items across the document in order.
func (d *Document) EducationItems() []EducationItem {
	var items []EducationItem
	for i := range d.Sections {
		for j := range d.Sections[i].Blocks {
			if b := d.Sections[i].Blocks[j]; b.Kind == BlockEducation && b.Education != nil {
				items = append(items, *b.Education)
			}
		}
	}
	return items
}

// Contact returns the contact info block if one was extracted, or nil.
func (d *Document) Contact() *ContactInfo {
	for i := range d.Sections {
		for j := range d.Sections[i].Blocks {
			if b := d.Sections[i].Blocks[j]; b.Kind == BlockContact && b.Contact != nil {
				return b.Contact
			}
		}
	}
	return nil
}

// CertificationCount returns the number of certification entries, counting
// one per bullet item in the certifications section.
func (d *Document) CertificationCount() int {
	sec := d.SectionByKind(SectionCertifications)
	if sec == nil {
		return 0
	}
	count := 0
	for i := range sec.Blocks {
		switch sec.Blocks[i].Kind {
		case BlockBulletList:
			count += len(sec.Blocks[i].Bullets)
		case BlockText:
			count++
		}
	}
	return count
}
