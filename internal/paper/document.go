// Package paper models an extracted academic paper as pages of text blocks
// and implements reference-section detection and truncation over it.
package paper

import "strings"

// TextBlock is a contiguous span of extracted text. It may hold several
// newline-separated lines.
type TextBlock struct {
	Text string `json:"text"`
}

// Lines returns the block's text split on newlines.
func (b TextBlock) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// Page is one page of extracted text in layout order.
type Page struct {
	Blocks []TextBlock `json:"blocks"`
}

// Text joins the page's blocks with blank lines.
func (p Page) Text() string {
	parts := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, "\n\n")
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	if p.Blocks == nil {
		return Page{}
	}
	blocks := make([]TextBlock, len(p.Blocks))
	copy(blocks, p.Blocks)
	return Page{Blocks: blocks}
}

// Document is an ordered sequence of pages extracted from a source file.
type Document struct {
	// Source is the path of the file the pages were extracted from.
	Source string `json:"source,omitempty"`
	Pages  []Page `json:"pages"`
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page returns the page at index i.
func (d *Document) Page(i int) Page {
	return d.Pages[i]
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{Source: d.Source}
	if d.Pages != nil {
		clone.Pages = make([]Page, len(d.Pages))
		for i, p := range d.Pages {
			clone.Pages[i] = p.Clone()
		}
	}
	return clone
}
