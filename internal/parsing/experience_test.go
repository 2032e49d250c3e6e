package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestParseExperienceItems_InlinePipe(t *testing.T) {
	lines := []string{
		"Software Engineer | Google Inc. | June 2020 - Present",
		"- Built scalable microservices",
		"- Led migration to Kubernetes",
		"",
		"Product Manager | Meta | 2018 - 2020",
		"- Shipped three launches",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 2)

	assert.Equal(t, "Software Engineer", items[0].Title)
	assert.Equal(t, "Google Inc.", items[0].Company)
	assert.Equal(t, "June 2020", items[0].StartDate)
	assert.Equal(t, "Present", items[0].EndDate)
	assert.Equal(t, []string{"Built scalable microservices", "Led migration to Kubernetes"}, items[0].Achievements)

	assert.Equal(t, "Product Manager", items[1].Title)
	assert.Equal(t, "Meta", items[1].Company)
	assert.Equal(t, "2018", items[1].StartDate)
	assert.Equal(t, "2020", items[1].EndDate)
}

func TestParseExperienceItems_InlinePipeWithLocation(t *testing.T) {
	lines := []string{
		"Data Analyst | Initech LLC | Austin, TX | Jan 2019 - Dec 2021",
		"- Automated weekly reporting",
		"Associate Analyst | Hooli | Dallas, TX | 2017 - 2019",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 2)
	assert.Equal(t, "Data Analyst", items[0].Title)
	assert.Equal(t, "Initech LLC", items[0].Company)
	assert.Equal(t, "Austin, TX", items[0].Location)
	assert.Equal(t, "Jan 2019", items[0].StartDate)
	assert.Equal(t, "Dec 2021", items[0].EndDate)
}

func TestParseExperienceItems_DateFirst(t *testing.T) {
	lines := []string{
		"June 2020 - Present",
		"Software Engineer",
		"Google Inc., San Francisco, CA",
		"- Built search infrastructure",
		"",
		"Jan 2018 - May 2020",
		"Junior Developer",
		"Initech LLC",
		"- Maintained internal tools",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 2)

	assert.Equal(t, "Software Engineer", items[0].Title)
	assert.Equal(t, "Google Inc.", items[0].Company)
	assert.Equal(t, "San Francisco, CA", items[0].Location)
	assert.Equal(t, "June 2020", items[0].StartDate)
	assert.Equal(t, "Present", items[0].EndDate)

	assert.Equal(t, "Junior Developer", items[1].Title)
	assert.Equal(t, "Initech LLC", items[1].Company)
	assert.Equal(t, []string{"Maintained internal tools"}, items[1].Achievements)
}

func TestParseExperienceItems_CompanyHeaders(t *testing.T) {
	lines := []string{
		"GOOGLE INC",
		"Senior Software Engineer",
		"June 2020 - Present",
		"- Built search infrastructure",
		"",
		"INITECH LLC",
		"Developer",
		"2018 - 2020",
		"- Maintained reporting stack",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 2)

	// Header text is carried verbatim, including its casing.
	assert.Equal(t, "GOOGLE INC", items[0].Company)
	assert.Equal(t, "Senior Software Engineer", items[0].Title)
	assert.Equal(t, "June 2020", items[0].StartDate)
	assert.Equal(t, "INITECH LLC", items[1].Company)
	assert.Equal(t, "Developer", items[1].Title)
}

func TestParseExperienceItems_CompanyHeaderSharedAcrossJobs(t *testing.T) {
	lines := []string{
		"GOOGLE INC",
		"Senior Engineer, 2020 - Present",
		"- Led platform work",
		"Engineer, 2017 - 2020",
		"- Shipped features",
	}
	p := New(Options{})
	items := p.parseCompanyHeaderItems(lines)
	require.Len(t, items, 2)
	assert.Equal(t, "GOOGLE INC", items[0].Company)
	assert.Equal(t, "GOOGLE INC", items[1].Company)
	assert.Equal(t, "Senior Engineer", items[0].Title)
	assert.Equal(t, "2020", items[0].StartDate)
	assert.Equal(t, "Engineer", items[1].Title)
}

func TestParseExperienceItems_FunctionalAggregatesOneItem(t *testing.T) {
	lines := []string{
		"- Led cross-team initiatives across departments",
		"- Managed vendor relationships end to end",
		"- Directed annual planning cycles",
		"Recognized for operational excellence",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Professional Experience", items[0].Title)
	assert.Len(t, items[0].Achievements, 3)
	assert.Empty(t, items[0].StartDate)
}

func TestParseExperienceItems_BulletJobs(t *testing.T) {
	lines := []string{
		"- As Software Engineer at Google (2019-2021): built search features",
		"- As Intern with Meta (Summer 2018): prototyped feed ranking",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 2)

	assert.Equal(t, "Software Engineer", items[0].Title)
	assert.Equal(t, "Google", items[0].Company)
	assert.Equal(t, "2019", items[0].StartDate)
	assert.Equal(t, "2021", items[0].EndDate)
	assert.Equal(t, "built search features", items[0].Description)

	assert.Equal(t, "Intern", items[1].Title)
	assert.Equal(t, "Meta", items[1].Company)
}

func TestParseTraditionalItem_HeaderWithDate(t *testing.T) {
	lines := []string{
		"Software Engineer - Google Inc, June 2020 - Present",
		"Worked on the search indexing pipeline.",
		"- Cut index latency in half",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Software Engineer", items[0].Title)
	assert.Equal(t, "Google Inc", items[0].Company)
	assert.Equal(t, "June 2020", items[0].StartDate)
	assert.Equal(t, "Present", items[0].EndDate)
	assert.Equal(t, "Worked on the search indexing pipeline.", items[0].Description)
	assert.Equal(t, []string{"Cut index latency in half"}, items[0].Achievements)
}

func TestParseTraditionalItem_LateCompanyAndDateLocation(t *testing.T) {
	lines := []string{
		"Software Engineer",
		"Google Inc.",
		"June 2020 - Present | Mountain View, CA",
		"- Built things",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Software Engineer", items[0].Title)
	assert.Equal(t, "Google Inc.", items[0].Company)
	assert.Equal(t, "Mountain View, CA", items[0].Location)
	assert.Equal(t, "June 2020", items[0].StartDate)
}

func TestParseTraditionalItem_AchievementsLabelSkipped(t *testing.T) {
	lines := []string{
		"Software Engineer - Google Inc",
		"June 2020 - Present",
		"Achievements:",
		"- Shipped the thing",
		"- Shipped the other thing",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"Shipped the thing", "Shipped the other thing"}, items[0].Achievements)
	assert.Empty(t, items[0].Description)
}

func TestInferMissingTitles_VerbMap(t *testing.T) {
	p := New(Options{})
	items := p.inferMissingTitles([]types.ExperienceItem{
		{Achievements: []string{"Managed a team of twelve"}},
		{Achievements: []string{"Led migration efforts, saving costs"}},
		{Achievements: []string{"Handled vendor escalations, improving turnaround"}},
	})
	assert.Equal(t, "Manager", items[0].Title)
	assert.Equal(t, "Team Lead", items[1].Title)
	// No verb mapping: first clause becomes the title.
	assert.Equal(t, "Handled vendor escalations", items[2].Title)
}

func TestInferMissingCompanies_PossessiveBeatsPreposition(t *testing.T) {
	p := New(Options{})
	items := p.inferMissingCompanies([]types.ExperienceItem{
		{Achievements: []string{
			"Worked with Initech on integrations",
			"Rebuilt Acme's billing platform",
		}},
		{Achievements: []string{"Consulted for Hooli on growth"}},
	})
	assert.Equal(t, "Acme", items[0].Company)
	assert.Equal(t, "Hooli", items[1].Company)
}

func TestPossessiveCompany_LeadingVerbExcluded(t *testing.T) {
	assert.Equal(t, "Acme", possessiveCompany("Rebuilt Acme's billing platform"))
	assert.Equal(t, "Acme", possessiveCompany("Managed Acme's cloud migration"))
	// A possessive that opens the achievement is the company itself.
	assert.Equal(t, "Acme", possessiveCompany("Acme's revenue doubled under my watch"))
	// Mid-sentence mentions keep the full capitalized run.
	assert.Equal(t, "Acme Corp", possessiveCompany("Grew adoption of Acme Corp's platform"))
	assert.Empty(t, possessiveCompany("Shipped the quarterly release"))
}

func TestParseExperienceItems_BareDateEntryInfersCompany(t *testing.T) {
	lines := []string{
		"June 2020 - Present",
		"- Managed Acme's cloud migration",
		"- Cut infrastructure spend by 30%",
	}
	p := New(Options{})
	items := p.parseExperienceItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "Manager", items[0].Title)
	assert.Equal(t, "Acme", items[0].Company)
	assert.Equal(t, "June 2020", items[0].StartDate)
}

func TestDedupeExperienceItems_CaseFoldedKey(t *testing.T) {
	p := New(Options{})
	items := p.dedupeExperienceItems([]types.ExperienceItem{
		{Title: "Engineer", Company: "Google", StartDate: "2020", EndDate: "2022"},
		{Title: "ENGINEER", Company: "google", StartDate: "2020", EndDate: "2022"},
		{Title: "Engineer", Company: "Google", StartDate: "2018", EndDate: "2020"},
	})
	require.Len(t, items, 2)
	assert.Equal(t, "2020", items[0].StartDate)
	assert.Equal(t, "2018", items[1].StartDate)
}

func TestSplitDateRange_Normalization(t *testing.T) {
	start, end := splitDateRange("June 2020 - present")
	assert.Equal(t, "June 2020", start)
	assert.Equal(t, "Present", end)

	start, end = splitDateRange("2015–2019")
	assert.Equal(t, "2015", start)
	assert.Equal(t, "2019", end)

	start, end = splitDateRange("May 2021")
	assert.Equal(t, "May 2021", start)
	assert.Empty(t, end)
}

func TestSplitTitleCompany_Separators(t *testing.T) {
	title, company := splitTitleCompany("Software Engineer - Google Inc")
	assert.Equal(t, "Software Engineer", title)
	assert.Equal(t, "Google Inc", company)

	title, company = splitTitleCompany("Analyst at Initech")
	assert.Equal(t, "Analyst", title)
	assert.Equal(t, "Initech", company)

	title, company = splitTitleCompany("Software Engineer")
	assert.Equal(t, "Software Engineer", title)
	assert.Empty(t, company)
}

func TestParseExperienceItems_AlwaysTerminates(t *testing.T) {
	// Lines that match no sub-parser must still be consumed one at a time.
	lines := []string{
		"???",
		"| |",
		"%%%%",
		"- As someone at nowhere (no date here): text",
	}
	p := New(Options{})
	assert.NotPanics(t, func() { p.parseExperienceItems(lines) })
}
