package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/itsmostafa/papersum/internal/paper"
)

func pdfcpuConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	n, err := api.PageCount(f, pdfcpuConfig())
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return n, nil
}

// pageRange returns the pdfcpu page selection for the first n pages.
func pageRange(n int) []string {
	if n == 1 {
		return []string{"1"}
	}
	return []string{fmt.Sprintf("1-%d", n)}
}

// WritePrefix writes the first pages pages of src to outPath.
func WritePrefix(src, outPath string, pages int) error {
	if pages <= 0 {
		return fmt.Errorf("invalid page count %d", pages)
	}
	if err := api.TrimFile(src, outPath, pageRange(pages), pdfcpuConfig()); err != nil {
		return fmt.Errorf("trimming %s to %d pages: %w", src, pages, err)
	}
	return nil
}

// WriteTemp serializes doc to a new temporary PDF and returns its path. The
// document's pages must be a prefix of its Source file, which is what
// paper.Truncate produces. The caller removes the file.
func WriteTemp(doc *paper.Document) (string, error) {
	if doc.Source == "" {
		return "", fmt.Errorf("document has no source file")
	}

	f, err := os.CreateTemp("", "papersum-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	f.Close()

	if err := WritePrefix(doc.Source, path, doc.PageCount()); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
