package paper

import "fmt"

// EarlyPageFraction is the leading share of a document in which header
// matches are ignored. Tables of contents and abstracts that mention
// "References" live there. The value is a tunable heuristic, not a measured
// optimum.
const EarlyPageFraction = 0.1

// BoundaryResult is the outcome of reference-section detection.
type BoundaryResult struct {
	// PageIndex is the 0-based page where the section starts. Only
	// meaningful when Found is true.
	PageIndex int
	Found     bool
}

// Found returns a result for a section starting at page i.
func Found(i int) BoundaryResult {
	return BoundaryResult{PageIndex: i, Found: true}
}

// NotFound is the result when no section header survives the guard.
var NotFound = BoundaryResult{}

func (r BoundaryResult) String() string {
	if !r.Found {
		return "not found"
	}
	return fmt.Sprintf("page %d", r.PageIndex)
}

// Detector scans documents for the start of a references section.
type Detector struct {
	pattern *HeaderPattern
}

// NewDetector creates a Detector using the given pattern. A nil pattern
// means DefaultHeaderPattern.
func NewDetector(pattern *HeaderPattern) *Detector {
	if pattern == nil {
		pattern = DefaultHeaderPattern()
	}
	return &Detector{pattern: pattern}
}

var defaultDetector = NewDetector(nil)

// Detect runs the default detector over doc.
func Detect(doc *Document) BoundaryResult {
	return defaultDetector.Detect(doc)
}

// Detect returns the first page, outside the early-page guard, containing a
// line that is exactly a reference-section header.
func (d *Detector) Detect(doc *Document) BoundaryResult {
	total := doc.PageCount()
	if total == 0 {
		return NotFound
	}
	cutoff := float64(total) * EarlyPageFraction

	for i, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines() {
				if !d.pattern.Match(line) {
					continue
				}
				if float64(i) < cutoff {
					continue
				}
				return Found(i)
			}
		}
	}

	return NotFound
}

// CutIndex applies the truncation policy to a detection result. It returns
// the last page to keep and true when the document should be cut. A header
// on page 0 is treated like no header at all.
func (r BoundaryResult) CutIndex() (int, bool) {
	if !r.Found || r.PageIndex <= 0 {
		return 0, false
	}
	return r.PageIndex - 1, true
}
