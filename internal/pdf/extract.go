// Package pdf converts PDF files to paper documents and writes page ranges
// of a PDF back to disk.
package pdf

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/itsmostafa/papersum/internal/paper"
)

// blockGapFactor is the vertical gap, in multiples of the line height, that
// starts a new text block.
const blockGapFactor = 1.8

// fontChangeRatio is the font-size ratio between neighbouring rows that
// starts a new text block.
const fontChangeRatio = 1.2

// Horizontal gaps on a baseline, in ems. A gap wider than wordGapFactor is a
// word break, one wider than columnGapFactor separates two columns.
const (
	wordGapFactor   = 0.25
	columnGapFactor = 1.5
)

// columnShiftFactor is the change in line start, in multiples of the line
// height, that starts a new text block.
const columnShiftFactor = 4.0

// defaultFontSize stands in for glyphs the reader reports without a size.
const defaultFontSize = 10.0

// line is a single run of text on a page in PDF user-space coordinates.
type line struct {
	X        float64
	Y        float64
	FontSize float64
	Text     string
}

// Extract reads a PDF and returns its text as pages of blocks.
func Extract(path string) (*paper.Document, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	n := r.NumPage()
	doc := &paper.Document{
		Source: path,
		Pages:  make([]paper.Page, n),
	}

	for i := 1; i <= n; i++ {
		lines, err := pageLines(r.Page(i))
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i, err)
		}
		doc.Pages[i-1] = paper.Page{Blocks: groupBlocks(lines)}
	}

	return doc, nil
}

// pageLines reads the positioned glyphs of a page and assembles them into
// lines. The underlying reader panics on malformed content streams, so
// panics are turned into errors.
func pageLines(p lpdf.Page) (lines []line, err error) {
	if p.V.IsNull() {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	for _, row := range glyphRows(p.Content().Text) {
		lines = append(lines, splitRow(row)...)
	}
	return lines, nil
}

// glyphRows buckets glyphs by baseline, rounded to the nearest point, and
// returns the rows top to bottom.
func glyphRows(glyphs []lpdf.Text) [][]lpdf.Text {
	byY := make(map[float64][]lpdf.Text)
	var ys []float64
	for _, g := range glyphs {
		if g.S == "" || g.S == "\n" {
			continue
		}
		y := math.Round(g.Y)
		if _, ok := byY[y]; !ok {
			ys = append(ys, y)
		}
		byY[y] = append(byY[y], g)
	}

	// PDF y grows upwards.
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))
	rows := make([][]lpdf.Text, 0, len(ys))
	for _, y := range ys {
		rows = append(rows, byY[y])
	}
	return rows
}

// splitRow joins the glyph runs of one baseline left to right. A narrow gap
// becomes a space and a column-wide gap ends the line, so side-by-side
// columns come out as separate lines.
func splitRow(runs []lpdf.Text) []line {
	sorted := make([]lpdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var (
		lines []line
		cur   line
		b     strings.Builder
	)
	flush := func() {
		if text := strings.TrimSpace(b.String()); text != "" {
			cur.Text = text
			lines = append(lines, cur)
		}
		b.Reset()
	}

	end := math.Inf(-1)
	for i, t := range sorted {
		em := t.FontSize
		if em <= 0 {
			em = defaultFontSize
		}
		gap := t.X - end
		switch {
		case i == 0:
			cur = line{X: t.X, Y: math.Round(t.Y)}
		case gap > columnGapFactor*em:
			flush()
			cur = line{X: t.X, Y: math.Round(t.Y)}
		case gap > wordGapFactor*em && !strings.HasPrefix(t.S, " ") && !strings.HasSuffix(b.String(), " "):
			b.WriteByte(' ')
		}
		if t.FontSize > cur.FontSize {
			cur.FontSize = t.FontSize
		}
		b.WriteString(t.S)
		end = t.X + runWidth(t)
	}
	flush()

	return lines
}

// runWidth returns the advance of a glyph run. Fonts without width tables
// report zero, in which case half an em per character is assumed.
func runWidth(t lpdf.Text) float64 {
	if t.W > 0 {
		return t.W
	}
	em := t.FontSize
	if em <= 0 {
		em = defaultFontSize
	}
	return 0.5 * em * float64(utf8.RuneCountInString(t.S))
}

// groupBlocks orders lines top to bottom and merges neighbouring lines into
// blocks. A block ends at a wide vertical gap, a jump to another column or a
// marked font-size change.
func groupBlocks(lines []line) []paper.TextBlock {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]line, len(lines))
	copy(sorted, lines)
	// PDF y grows upwards.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var blocks []paper.TextBlock
	current := []string{sorted[0].Text}
	prev := sorted[0]

	for _, l := range sorted[1:] {
		if startsBlock(prev, l) {
			blocks = append(blocks, paper.TextBlock{Text: strings.Join(current, "\n")})
			current = nil
		}
		current = append(current, l.Text)
		prev = l
	}
	blocks = append(blocks, paper.TextBlock{Text: strings.Join(current, "\n")})

	return blocks
}

func startsBlock(prev, next line) bool {
	height := math.Max(prev.FontSize, next.FontSize)
	if height <= 0 {
		height = defaultFontSize
	}
	if prev.Y-next.Y > blockGapFactor*height {
		return true
	}
	if math.Abs(prev.X-next.X) > columnShiftFactor*height {
		return true
	}
	lo, hi := prev.FontSize, next.FontSize
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo > 0 && hi/lo > fontChangeRatio
}
