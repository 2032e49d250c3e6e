package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestExtractSkillBlocks_LabeledGroups(t *testing.T) {
	cur := newCursor([]string{
		"Languages: Go, Python, SQL",
		"Tools: Docker; Kubernetes; Terraform",
	})
	blocks := New(Options{}).extractSkillBlocks(cur)
	require.Len(t, blocks, 2)

	assert.Equal(t, "Languages", blocks[0].SkillGroup.Category)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, blocks[0].SkillGroup.Skills)
	assert.Equal(t, "Tools", blocks[1].SkillGroup.Category)
	assert.Equal(t, []string{"Docker", "Kubernetes", "Terraform"}, blocks[1].SkillGroup.Skills)
}

func TestExtractSkillBlocks_UnlabeledAndBulleted(t *testing.T) {
	cur := newCursor([]string{
		"Go, Python, SQL",
		"- Docker, Kubernetes",
	})
	blocks := New(Options{}).extractSkillBlocks(cur)
	require.Len(t, blocks, 2)
	assert.Empty(t, blocks[0].SkillGroup.Category)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, blocks[0].SkillGroup.Skills)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, blocks[1].SkillGroup.Skills)
}

func TestSplitSkillList_DropsOverlongEntries(t *testing.T) {
	long := "a skill description that rambles on for far longer than any real skill name would"
	skills := splitSkillList("Go, " + long + ", SQL")
	assert.Equal(t, []string{"Go", "SQL"}, skills)
}

func TestExtractBulletListBlocks_OneEntryPerLine(t *testing.T) {
	cur := newCursor([]string{
		"- AWS Certified Solutions Architect",
		"CompTIA Security+",
		"",
		"PMP",
	})
	blocks := New(Options{}).extractBulletListBlocks(cur)
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Bullets, 3)
	assert.Equal(t, "AWS Certified Solutions Architect", blocks[0].Bullets[0].Text)
	assert.Equal(t, "CompTIA Security+", blocks[0].Bullets[1].Text)
	assert.Equal(t, "PMP", blocks[0].Bullets[2].Text)
}

func TestExtractGenericBlocks_AlternatesTextAndBullets(t *testing.T) {
	cur := newCursor([]string{
		"A paragraph of prose",
		"continuing on a second line",
		"- first bullet",
		"- second bullet",
		"",
		"Another paragraph",
	})
	blocks := New(Options{}).extractGenericBlocks(cur)
	require.Len(t, blocks, 3)
	assert.Equal(t, types.BlockText, blocks[0].Kind)
	assert.Equal(t, "A paragraph of prose continuing on a second line", blocks[0].Text)
	assert.Equal(t, types.BlockBulletList, blocks[1].Kind)
	assert.Len(t, blocks[1].Bullets, 2)
	assert.Equal(t, types.BlockText, blocks[2].Kind)
}

func TestIndentLevel_SpacesAndTabs(t *testing.T) {
	assert.Equal(t, 0, indentLevel("- bullet"))
	assert.Equal(t, 1, indentLevel("  - bullet"))
	assert.Equal(t, 2, indentLevel("    - bullet"))
	assert.Equal(t, 1, indentLevel("\t- bullet"))
}

func TestSegment_EmitsEmptySections(t *testing.T) {
	p := New(Options{})
	sections := p.segment([]string{"EDUCATION", "", "SKILLS", "Go, Python"})
	require.Len(t, sections, 2)
	assert.Equal(t, types.SectionEducation, sections[0].Kind)
	assert.Empty(t, sections[0].Blocks)
	assert.Equal(t, types.SectionSkills, sections[1].Kind)
	assert.Len(t, sections[1].Blocks, 1)
}

func TestSegment_CustomSectionForUnknownHeading(t *testing.T) {
	p := New(Options{})
	sections := p.segment([]string{"SENIOR SOFTWARE ENGINEER", "Google Inc.", "2020 - Present"})
	require.NotEmpty(t, sections)

	var custom *types.Section
	for i := range sections {
		if sections[i].Kind == types.SectionCustom {
			custom = &sections[i]
		}
	}
	require.NotNil(t, custom)
	assert.Equal(t, "SENIOR SOFTWARE ENGINEER", custom.Heading)
}
