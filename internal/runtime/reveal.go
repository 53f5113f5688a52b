package runtime

import (
	"fmt"
	"strings"

	"github.com/naghz/naghz/internal/content"
)

// RevealText renders the canonical correct answer as display text,
// resolving option ids through the page's option list. Unresolvable ids
// fall back to the raw id so a broken answer key still reveals
// something.
func (r *Runtime) RevealText() string {
	a := r.page.Answer
	switch a.Type {
	case content.TestDefault:
		id := a.Single
		if id == 0 && len(a.IDs) > 0 {
			id = a.IDs[0]
		}
		return r.optionText(id)

	case content.TestMultiple:
		return strings.Join(r.optionTexts(a.IDs), ", ")

	case content.TestSequential:
		return strings.Join(r.optionTexts(a.IDs), " → ")

	case content.TestPluggable:
		parts := make([]string, 0, len(a.Pairs))
		for _, p := range a.Pairs {
			parts = append(parts, r.optionText(p[0])+" — "+r.optionText(p[1]))
		}
		return strings.Join(parts, "; ")

	case content.TestInput:
		return a.Text
	}
	return ""
}

func (r *Runtime) optionTexts(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.optionText(id)
	}
	return out
}

func (r *Runtime) optionText(id int) string {
	if o, ok := r.page.OptionByID(id); ok {
		return o.Text
	}
	return fmt.Sprintf("#%d", id)
}
