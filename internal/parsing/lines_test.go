package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestIsBullet_RecognizesMarkers(t *testing.T) {
	assert.True(t, isBullet("- Built systems"))
	assert.True(t, isBullet("• Led a team"))
	assert.True(t, isBullet("* Shipped features"))
	assert.True(t, isBullet("  - indented bullet"))
	assert.False(t, isBullet("Built systems"))
	assert.False(t, isBullet("2019 - 2021"))
}

func TestIsDateLine_MonthYearAndBareYears(t *testing.T) {
	assert.True(t, isDateLine("June 2020"))
	assert.True(t, isDateLine("Jan 2018"))
	assert.True(t, isDateLine("2019"))
	assert.True(t, isDateLine("June 2020 - Present"))
	assert.True(t, isDateLine("2015 – 2019"))
	assert.False(t, isDateLine("Joined June 2020 as lead"))
	assert.False(t, isDateLine("Software Engineer"))
}

func TestIsDateRangeLine_DashVariants(t *testing.T) {
	assert.True(t, isDateRangeLine("June 2020 - Present"))
	assert.True(t, isDateRangeLine("June 2020 – May 2022"))
	assert.True(t, isDateRangeLine("June 2020 — Current"))
	assert.True(t, isDateRangeLine("2015-2019"))
	assert.False(t, isDateRangeLine("June 2020"))
	assert.False(t, isDateRangeLine("May - June"))
}

func TestClassifyHeading_CanonicalNames(t *testing.T) {
	cases := map[string]types.SectionKind{
		"WORK EXPERIENCE":     types.SectionExperience,
		"Employment History":  types.SectionExperience,
		"EDUCATION":           types.SectionEducation,
		"Academic Background": types.SectionEducation,
		"TECHNICAL SKILLS":    types.SectionSkills,
		"Certifications":      types.SectionCertifications,
		"Summary:":            types.SectionSummary,
		"References":          types.SectionReferences,
	}
	for heading, want := range cases {
		kind, ok := classifyHeading(heading)
		assert.True(t, ok, "expected %q to classify", heading)
		assert.Equal(t, want, kind, heading)
	}
}

func TestClassifyHeading_RejectsProse(t *testing.T) {
	_, ok := classifyHeading("Experienced in building sales teams")
	assert.False(t, ok)
	_, ok = classifyHeading("I have broad education in the arts")
	assert.False(t, ok)
}

func TestClassifyHeading_ContainsMatchOnlyForHeadingShapes(t *testing.T) {
	kind, ok := classifyHeading("RELEVANT WORK EXPERIENCE")
	assert.True(t, ok)
	assert.Equal(t, types.SectionExperience, kind)

	kind, ok = classifyHeading("Technical Skills:")
	assert.True(t, ok)
	assert.Equal(t, types.SectionSkills, kind)
}

func TestIsHeading_JobTitleShape(t *testing.T) {
	// All caps, 15-80 chars, role keyword: segments as a (custom) heading so
	// consolidation can recover it later.
	assert.True(t, isHeading("SENIOR SOFTWARE ENGINEER"))
	assert.True(t, isHeading("DIRECTOR OF OPERATIONS"))
	// Too short, or no role keyword.
	assert.False(t, isHeading("GOOGLE INC"))
	assert.False(t, isHeading("LEADERSHIP"))
	// LEADERSHIP must not match the LEAD keyword.
	assert.False(t, isJobTitleHeading("TEAM LEADERSHIP PROGRAM"))
}

func TestIsHeading_AcronymAllowList(t *testing.T) {
	assert.True(t, isHeading("IT"))
	assert.True(t, isHeading("R&D"))
	assert.False(t, isHeading("XYZ"))
}

func TestLooksLikeJobTitle_SeparatorAndEdgeCases(t *testing.T) {
	assert.True(t, looksLikeJobTitle("Software Engineer - Google Inc"))
	assert.True(t, looksLikeJobTitle("Product Manager | Meta"))
	// Period-terminated lines are prose, not headers.
	assert.False(t, looksLikeJobTitle("Worked as engineer - mostly backend."))
	// No separator.
	assert.False(t, looksLikeJobTitle("Software Engineer"))
	// Dates and bullets never qualify.
	assert.False(t, looksLikeJobTitle("June 2020 - Present"))
	assert.False(t, looksLikeJobTitle("- Software Engineer - Google"))
	// Excessive commas.
	assert.False(t, looksLikeJobTitle("Go, Python, Java, SQL - all of them"))
}

func TestLooksLikeCompanyName_Keywords(t *testing.T) {
	assert.True(t, looksLikeCompanyName("Google Inc."))
	assert.True(t, looksLikeCompanyName("Initech LLC"))
	assert.True(t, looksLikeCompanyName("Acme Technologies"))
	assert.False(t, looksLikeCompanyName("Software Engineer"))
	assert.False(t, looksLikeCompanyName("June 2020 - Present"))
}

func TestLooksLikeInstitution_Keywords(t *testing.T) {
	assert.True(t, looksLikeInstitution("Stanford University"))
	assert.True(t, looksLikeInstitution("City College of New York"))
	assert.False(t, looksLikeInstitution("Google Inc."))
}

func TestClassifyLine_TaggedKinds(t *testing.T) {
	assert.Equal(t, lineBlank, classifyLine("   "))
	assert.Equal(t, lineBullet, classifyLine("- Built it"))
	assert.Equal(t, lineDate, classifyLine("June 2020 - Present"))
	assert.Equal(t, lineHeading, classifyLine("WORK EXPERIENCE"))
	assert.Equal(t, lineJobTitle, classifyLine("Software Engineer - Google"))
	assert.Equal(t, lineText, classifyLine("built scalable systems for years"))
}
