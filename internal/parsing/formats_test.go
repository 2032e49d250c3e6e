package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectExperienceFormat_InlinePipe(t *testing.T) {
	lines := []string{
		"Software Engineer | Google Inc. | June 2020 - Present",
		"- Built scalable microservices",
		"- Led migration to Kubernetes",
		"Product Manager | Meta | 2018 - 2020",
		"- Shipped three product launches",
	}
	p := New(Options{})
	assert.Equal(t, formatInlinePipe, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_DateFirst(t *testing.T) {
	lines := []string{
		"June 2020 - Present",
		"Software Engineer",
		"Google Inc., San Francisco, CA",
		"- Did impactful things",
		"",
		"Jan 2018 - May 2020",
		"Junior Developer",
		"Initech LLC",
		"- Did other things",
	}
	p := New(Options{})
	assert.Equal(t, formatDateFirst, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_CompanyHeaders(t *testing.T) {
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
	assert.Equal(t, formatCompanyHeaders, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_Functional(t *testing.T) {
	lines := []string{
		"- Led cross-team initiatives across departments",
		"- Managed vendor relationships end to end",
		"- Directed annual planning cycles",
		"Recognized for operational excellence",
	}
	p := New(Options{})
	assert.Equal(t, formatFunctional, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_BulletJobs(t *testing.T) {
	lines := []string{
		"- As Software Engineer at Google (2019-2021): built search features",
		"- As Intern with Meta (Summer 2018): prototyped feed ranking",
	}
	p := New(Options{})
	assert.Equal(t, formatBulletJobs, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_HybridWhenSignalsTie(t *testing.T) {
	lines := []string{
		"Software Engineer | Google | 2020 - Present",
		"- As Consultant at Acme (2018): advised platform teams",
		"Manager | Initech | 2016 - 2018",
		"- As Intern for Hooli (2015): supported release engineering",
	}
	p := New(Options{})
	assert.Equal(t, formatHybrid, p.detectExperienceFormat(lines))
}

func TestDetectExperienceFormat_DefaultsToTraditional(t *testing.T) {
	lines := []string{
		"Software Engineer",
		"Google Inc.",
		"June 2020 - Present",
		"- Built systems",
	}
	p := New(Options{})
	assert.Equal(t, formatTraditional, p.detectExperienceFormat(lines))

	assert.Equal(t, formatTraditional, p.detectExperienceFormat(nil))
}

func TestDetectExperienceFormat_IsDeterministic(t *testing.T) {
	lines := []string{
		"June 2020 - Present",
		"Software Engineer",
		"",
		"Jan 2018 - May 2020",
		"Junior Developer",
	}
	p := New(Options{})
	first := p.detectExperienceFormat(lines)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.detectExperienceFormat(lines))
	}
}

func TestCountFormatSignals_BareDateNeedsBoundaryAndNoTitle(t *testing.T) {
	s := countFormatSignals([]string{"June 2020 - Present", "", "2018 - 2019", ""})
	assert.Equal(t, 2, s.bareDate)
	assert.Equal(t, 0, s.dateFirst)

	// A range trailing a title line is neither date-first nor bare.
	s = countFormatSignals([]string{"Software Engineer - Google", "June 2020 - Present"})
	assert.Equal(t, 0, s.bareDate)
	assert.Equal(t, 0, s.dateFirst)
}

func TestIsBulletJobLine_RequiresDateInParens(t *testing.T) {
	assert.True(t, isBulletJobLine("- As Software Engineer at Google (2019-2021): built things"))
	assert.True(t, isBulletJobLine("- Managed vendors for Acme Corp (2015 - 2017), cutting costs"))
	assert.False(t, isBulletJobLine("- Worked at Google (briefly) on search"))
	assert.False(t, isBulletJobLine("- Led cross-team initiatives"))
}

func TestIsCompanyHeaderLine_Shapes(t *testing.T) {
	assert.True(t, isCompanyHeaderLine("GOOGLE INC"))
	assert.True(t, isCompanyHeaderLine("INITECH LLC"))
	assert.False(t, isCompanyHeaderLine("SENIOR SOFTWARE ENGINEER")) // role keyword
	assert.False(t, isCompanyHeaderLine("Google Inc."))              // mixed case
	assert.False(t, isCompanyHeaderLine("JUNE 2020 - PRESENT"))      // date
}
