package content

import "fmt"

// ValidateSequence checks the sequence invariant: page numbers are
// contiguous 1..N and every page's Length equals N. Pages must already
// be sorted by Number, which is how the store returns them.
func ValidateSequence(pages []Page) error {
	n := len(pages)
	if n == 0 {
		return fmt.Errorf("sequence is empty")
	}
	for i, p := range pages {
		if p.Number != i+1 {
			return fmt.Errorf("page %q: number %d, want %d", p.ID, p.Number, i+1)
		}
		if p.Length != n {
			return fmt.Errorf("page %q: length %d, want %d", p.ID, p.Length, n)
		}
	}
	return nil
}
