package paper

import (
	"regexp"
	"strings"
)

// DefaultSectionNames is the vocabulary of reference-section headers.
var DefaultSectionNames = []string{
	"references",
	"bibliography",
	"works cited",
	"literature cited",
}

// space matches ASCII and Unicode space separators such as U+00A0, which
// PDF text layers often emit between a section number and its title.
const space = `[\s\p{Zs}]`

// HeaderPattern recognizes a standalone reference-section header line,
// optionally preceded by a section number such as "3." or "3".
type HeaderPattern struct {
	names          []string
	allowNumbering bool
	re             *regexp.Regexp
}

// NewHeaderPattern compiles a case-insensitive whole-line pattern for the
// given section names.
func NewHeaderPattern(names []string, allowNumbering bool) *HeaderPattern {
	var kept, quoted []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		kept = append(kept, n)
		quoted = append(quoted, regexp.QuoteMeta(n))
	}

	prefix := ""
	if allowNumbering {
		prefix = `(?:\d+\.?` + space + `*)?`
	}
	h := &HeaderPattern{
		names:          kept,
		allowNumbering: allowNumbering,
	}
	// An empty vocabulary matches nothing.
	if len(quoted) > 0 {
		h.re = regexp.MustCompile(`(?i)^` + space + `*` + prefix + `(?:` + strings.Join(quoted, "|") + `)` + space + `*$`)
	}
	return h
}

// DefaultHeaderPattern returns the pattern for DefaultSectionNames with
// numbering allowed.
func DefaultHeaderPattern() *HeaderPattern {
	return NewHeaderPattern(DefaultSectionNames, true)
}

// Match reports whether the whole line, once trimmed, is a section header.
func (h *HeaderPattern) Match(line string) bool {
	if h.re == nil {
		return false
	}
	return h.re.MatchString(strings.TrimSpace(line))
}

// Names returns the recognized section names.
func (h *HeaderPattern) Names() []string {
	return append([]string(nil), h.names...)
}

// AllowsNumbering reports whether a leading section number is accepted.
func (h *HeaderPattern) AllowsNumbering() bool {
	return h.allowNumbering
}

// String returns the underlying expression.
func (h *HeaderPattern) String() string {
	if h.re == nil {
		return ""
	}
	return h.re.String()
}
