package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naghz/naghz/internal/content"
)

func TestDemoCourseIsWellFormed(t *testing.T) {
	course, pages, options := demoCourse()

	assert.Equal(t, DemoCourseID, course.ID)
	require.NoError(t, content.ValidateSequence(pages))

	for _, p := range pages {
		if p.Type != content.PageTest || p.Test == content.TestInput {
			continue
		}
		opts := options[p.ID]
		require.NotEmpty(t, opts, "quiz page %s has no options", p.ID)

		ids := make(map[int]bool, len(opts))
		for _, o := range opts {
			ids[o.ID] = true
		}

		referenced := append([]int{}, p.Answer.IDs...)
		if p.Answer.Single != 0 {
			referenced = append(referenced, p.Answer.Single)
		}
		for _, pair := range p.Answer.Pairs {
			referenced = append(referenced, pair[0], pair[1])
		}
		for _, id := range referenced {
			assert.True(t, ids[id], "page %s answer references unknown option %d", p.ID, id)
		}
	}
}

func TestDemoCourseCoversEveryTestType(t *testing.T) {
	_, pages, _ := demoCourse()

	seen := make(map[content.TestType]bool)
	var hasAI, hasSkippable bool
	for _, p := range pages {
		if p.Type == content.PageTest {
			seen[p.Test] = true
		}
		if p.AIEnabled() {
			hasAI = true
		}
		if p.Type == content.PageTestSkippable {
			hasSkippable = true
		}
	}

	for _, tt := range []content.TestType{
		content.TestDefault, content.TestMultiple, content.TestSequential,
		content.TestPluggable, content.TestInput,
	} {
		assert.True(t, seen[tt], "missing test type %s", tt)
	}
	assert.True(t, hasAI, "missing AI-graded page")
	assert.True(t, hasSkippable, "missing skippable page")
}
