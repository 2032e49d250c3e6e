package parsing

import "strings"

// cursor is the current read position into a line array. It is local to one
// parse call and threaded explicitly through every extractor so mutation
// stays scoped. Every extraction loop must advance the cursor by at least one
// line per iteration, guaranteeing termination on any input.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.lines)
}

// current returns the trimmed line at the cursor, or "" past the end.
func (c *cursor) current() string {
	return c.peek(0)
}

// peek returns the trimmed line at the given offset from the cursor, or ""
// outside the array bounds.
func (c *cursor) peek(offset int) string {
	i := c.pos + offset
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	return strings.TrimSpace(c.lines[i])
}

// raw returns the untrimmed line at the given offset, preserving indentation.
func (c *cursor) raw(offset int) string {
	i := c.pos + offset
	if i < 0 || i >= len(c.lines) {
		return ""
	}
	return c.lines[i]
}

func (c *cursor) advance() {
	c.pos++
}

func (c *cursor) advanceBy(n int) {
	c.pos += n
}

// skipBlank advances past consecutive blank lines.
func (c *cursor) skipBlank() {
	for !c.done() && c.current() == "" {
		c.advance()
	}
}
