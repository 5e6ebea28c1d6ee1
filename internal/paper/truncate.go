package paper

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by errors.Is for every *OutOfRangeError.
var ErrOutOfRange = errors.New("page index out of range")

// OutOfRangeError reports a cut index outside [0, PageCount).
type OutOfRangeError struct {
	Index     int
	PageCount int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cut index %d out of range [0, %d)", e.Index, e.PageCount)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Truncate returns a new document holding pages [0, lastIncluded] of doc.
// Page content is deep-copied; the result shares nothing with doc.
func Truncate(doc *Document, lastIncluded int) (*Document, error) {
	count := doc.PageCount()
	if lastIncluded < 0 || lastIncluded >= count {
		return nil, &OutOfRangeError{Index: lastIncluded, PageCount: count}
	}

	out := &Document{
		Source: doc.Source,
		Pages:  make([]Page, lastIncluded+1),
	}
	for i := 0; i <= lastIncluded; i++ {
		out.Pages[i] = doc.Pages[i].Clone()
	}
	return out, nil
}

// Body applies the detection and truncation policy in one step. It returns
// the body-only document and the detection result. When no cut applies the
// original document is returned unchanged.
func Body(doc *Document) (*Document, BoundaryResult, error) {
	result := Detect(doc)
	last, ok := result.CutIndex()
	if !ok {
		return doc, result, nil
	}
	body, err := Truncate(doc, last)
	if err != nil {
		return nil, result, err
	}
	return body, result, nil
}
