// Package parsing implements the resume structure recognizer: a synchronous
// pipeline that converts extraction-artifact-laden plain text into the typed
// document model. The recognizer never rejects input; malformed content
// degrades to free text and structural anomalies are healed by the
// post-processing passes.
package parsing

import (
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
)

// Options configures a Parser.
type Options struct {
	// FromPDF enables the PDF-specific normalization passes (page-number and
	// footer stripping) that make no sense for DOCX or plain text input.
	FromPDF bool
	// Verbose emits advisory diagnostics to the standard logger. Diagnostics
	// never change control flow and are not part of the parse contract.
	Verbose bool
	// Normalizer overrides the default normalization pass toggles.
	Normalizer *NormalizerOptions
}

// Parser recognizes resume structure in plain text. A Parser is cheap and
// carries no per-parse state; still, each concurrent parse should get its own
// instance so nothing is shared across calls.
type Parser struct {
	opts Options
}

// New creates a Parser.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse converts one resume text into a Document. It never returns an error:
// empty or whitespace-only input yields a document with zero sections, and
// anything else degrades gracefully.
func (p *Parser) Parse(text string) *types.Document {
	doc := &types.Document{
		Metadata: types.Metadata{
			ParsedAt:     time.Now().UTC(),
			WordCount:    len(strings.Fields(text)),
			SourceFormat: p.sourceFormat(),
		},
		RawText: text,
	}
	if strings.TrimSpace(text) == "" {
		return doc
	}

	lines := splitLines(text)
	lines = normalizeLines(lines, p.normalizerOptions())

	doc.Metadata.Formatting = detectFormatting(lines)
	sections := p.segment(lines)
	doc.Sections = p.postProcess(sections, lines)
	return doc
}

func (p *Parser) sourceFormat() string {
	if p.opts.FromPDF {
		return "pdf"
	}
	return "text"
}

func (p *Parser) normalizerOptions() NormalizerOptions {
	if p.opts.Normalizer != nil {
		return *p.opts.Normalizer
	}
	return defaultNormalizerOptions(p.opts.FromPDF)
}

// splitLines normalizes line endings and splits the text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// detectFormatting records the formatting conventions observed in the source,
// for export collaborators that want to regenerate a similar style.
func detectFormatting(lines []string) types.FormattingPrefs {
	prefs := types.FormattingPrefs{}
	bulletCounts := map[string]int{}
	capsHeadings := 0
	headings := 0

	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if isBullet(t) {
			bulletCounts[string([]rune(t)[:1])]++
		}
		if strings.Count(t, "|") >= 2 && !looksLikeContactLine(t) {
			prefs.UsesPipeSeparators = true
		}
		if isHeading(t) {
			headings++
			if isAllCaps(t) {
				capsHeadings++
			}
		}
	}

	best := 0
	for ch, n := range bulletCounts {
		if n > best {
			best = n
			prefs.BulletChar = ch
		}
	}
	prefs.AllCapsHeadings = headings > 0 && capsHeadings*2 >= headings
	return prefs
}

// looksLikeContactLine reports whether a line carries contact details. Packed
// contact rows often use pipes ("email | phone | city") without the body of
// the resume using them at all, so they don't count as a pipe-separator
// preference.
func looksLikeContactLine(t string) bool {
	if emailRe.MatchString(t) || linkedinRe.MatchString(t) || githubRe.MatchString(t) {
		return true
	}
	return phoneRe.MatchString(t) && !containsDateRange(t)
}
