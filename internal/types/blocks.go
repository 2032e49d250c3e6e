package types

import "github.com/google/uuid"

// BlockKind identifies the payload variant carried by a ContentBlock.
type BlockKind string

// Content block variants.
const (
	BlockText       BlockKind = "text"
	BlockBulletList BlockKind = "bullet_list"
	BlockExperience BlockKind = "experience"
	BlockEducation  BlockKind = "education"
	BlockContact    BlockKind = "contact"
	BlockSkillGroup BlockKind = "skill_group"
)

// ContentBlock is one typed unit of content inside a section. Exactly one
// payload field is set, matching Kind. The id is stable so downstream
// collaborators can track changes across processing runs.
type ContentBlock struct {
	ID   string    `json:"id"`
	Kind BlockKind `json:"kind"`

	Text       string          `json:"text,omitempty"`
	Bullets    []BulletItem    `json:"bullets,omitempty"`
	Experience *ExperienceItem `json:"experience,omitempty"`
	Education  *EducationItem  `json:"education,omitempty"`
	Contact    *ContactInfo    `json:"contact,omitempty"`
	SkillGroup *SkillGroup     `json:"skill_group,omitempty"`
}

// BulletItem is a single bullet with optional indent metadata, used both for
// achievements and generic bullet lists.
type BulletItem struct {
	Text        string `json:"text"`
	IndentLevel int    `json:"indent_level,omitempty"`
	Original    string `json:"original,omitempty"`
}

// SkillGroup is an optionally labeled ordered list of skills.
type SkillGroup struct {
	Category string   `json:"category,omitempty"`
	Skills   []string `json:"skills"`
}

// NewTextBlock creates a free text content block.
func NewTextBlock(text string) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockText, Text: text}
}

// NewBulletListBlock creates a bullet list content block.
func NewBulletListBlock(bullets []BulletItem) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockBulletList, Bullets: bullets}
}

// NewExperienceBlock creates a content block holding one experience item.
func NewExperienceBlock(item ExperienceItem) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockExperience, Experience: &item}
}

// NewEducationBlock creates a content block holding one education item.
func NewEducationBlock(item EducationItem) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockEducation, Education: &item}
}

// NewContactBlock creates a content block holding contact info.
func NewContactBlock(info ContactInfo) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockContact, Contact: &info}
}

// NewSkillGroupBlock creates a content block holding one skill group.
func NewSkillGroupBlock(group SkillGroup) ContentBlock {
	return ContentBlock{ID: uuid.NewString(), Kind: BlockSkillGroup, SkillGroup: &group}
}
