package sequencer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naghz/naghz/internal/content"
)

// countingSource records calls so tests can assert fetch behavior.
type countingSource struct {
	pages       []content.Page
	options     map[string][]content.Option
	pageCalls   int
	optionCalls map[string]int
	failOptions bool
}

func newCountingSource(pages []content.Page, options map[string][]content.Option) *countingSource {
	return &countingSource{pages: pages, options: options, optionCalls: make(map[string]int)}
}

func (c *countingSource) ListPages(_ context.Context, _ string) ([]content.Page, error) {
	c.pageCalls++
	return c.pages, nil
}

func (c *countingSource) ListOptions(_ context.Context, pageID string) ([]content.Option, error) {
	c.optionCalls[pageID]++
	if c.failOptions {
		return nil, errors.New("store unreachable")
	}
	return c.options[pageID], nil
}

func threePages() ([]content.Page, map[string][]content.Option) {
	pages := []content.Page{
		{ID: "p1", Number: 1, Length: 3, Type: content.PageText, Body: "welcome"},
		{ID: "p2", Number: 2, Length: 3, Type: content.PageTest, Test: content.TestDefault,
			Question: "pick two", Answer: content.SingleAnswer(2)},
		{ID: "p3", Number: 3, Length: 3, Type: content.PageTestSkippable, Test: content.TestDefault},
	}
	options := map[string][]content.Option{
		"p2": {{ID: 1, Text: "one", Order: 1}, {ID: 2, Text: "two", Order: 2}},
		"p3": {{ID: 1, Text: "a", Order: 1}},
	}
	return pages, options
}

// driveFetch resolves pending option fetches against the source, the
// way the lesson screen does with commands.
func driveFetch(t *testing.T, s *Sequencer, src *countingSource) {
	t.Helper()
	req, ok := s.OptionsNeeded()
	if !ok {
		return
	}
	opts, err := src.ListOptions(context.Background(), req.PageID)
	s.Deliver(req.Token, req.PageID, opts, err)
}

func TestLiveModeLoadsAndCaches(t *testing.T) {
	pages, options := threePages()
	src := newCountingSource(pages, options)
	s := NewLive(src, "course-1", 1)

	assert.False(t, s.Ready())
	got, err := src.ListPages(context.Background(), "course-1")
	require.NoError(t, err)
	require.NoError(t, s.SetPages(got))

	// Text page needs no options.
	assert.True(t, s.Ready())
	rp, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "p1", rp.ID)

	// Advancing to the quiz page requires one fetch.
	require.True(t, s.Next())
	assert.False(t, s.Ready())
	driveFetch(t, s, src)
	assert.True(t, s.Ready())

	// Paging away and back never re-fetches.
	require.True(t, s.Previous())
	require.True(t, s.Next())
	driveFetch(t, s, src)
	assert.Equal(t, 1, src.optionCalls["p2"])

	rp, ok = s.Current()
	require.True(t, ok)
	assert.Len(t, rp.Options, 2)
	assert.Equal(t, content.TestDefault, rp.Test)
}

func TestBoundaries(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 1)
	require.NoError(t, err)

	assert.False(t, s.CanGoPrevious())
	assert.False(t, s.Previous(), "previous at index 0 is a no-op")
	assert.Equal(t, 0, s.Index())

	require.True(t, s.Next())
	require.True(t, s.Next())
	assert.True(t, s.AtEnd())
	assert.False(t, s.CanGoNext())
	assert.False(t, s.Next(), "next at the last page is a no-op")
	assert.Equal(t, 2, s.Index())
}

func TestPreloadedNeverFetches(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 1)
	require.NoError(t, err)

	for i := 0; i < len(pages); i++ {
		assert.True(t, s.Ready())
		_, ok := s.OptionsNeeded()
		assert.False(t, ok)
		s.Next()
	}
}

func TestPreloadedRequiresOptions(t *testing.T) {
	pages, _ := threePages()
	_, err := NewPreloaded(pages, nil, 1)
	assert.Error(t, err)
}

func TestPreloadedRejectsBrokenSequence(t *testing.T) {
	pages, options := threePages()
	pages[1].Number = 5
	_, err := NewPreloaded(pages, options, 1)
	assert.Error(t, err)
}

func TestStaleDeliveryDiscarded(t *testing.T) {
	pages, options := threePages()
	src := newCountingSource(pages, options)
	s := NewLive(src, "course-1", 2)
	require.NoError(t, s.SetPages(pages))

	req, ok := s.OptionsNeeded()
	require.True(t, ok)

	// A failed fetch frees the slot; the retry gets a newer token.
	assert.False(t, s.Deliver(req.Token, req.PageID, nil, errors.New("timeout")))
	req2, ok := s.OptionsNeeded()
	require.True(t, ok)
	assert.Greater(t, req2.Token, req.Token)

	// The old token is no longer trusted.
	assert.False(t, s.Deliver(req.Token, req.PageID, options["p2"], nil))
	assert.False(t, s.Ready())

	// The live token lands.
	assert.True(t, s.Deliver(req2.Token, req2.PageID, options["p2"], nil))
	assert.True(t, s.Ready())
}

func TestDirectionTracking(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 1)
	require.NoError(t, err)

	s.Next()
	assert.Equal(t, DirForward, s.LastDirection())
	s.Previous()
	assert.Equal(t, DirBackward, s.LastDirection())
}

func TestProgressFraction(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, s.Progress(), 1e-9)
	s.Next()
	assert.InDelta(t, 2.0/3.0, s.Progress(), 1e-9)
	s.Next()
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
}

func TestJump(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 1)
	require.NoError(t, err)

	assert.True(t, s.Jump("p3"))
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, DirForward, s.LastDirection())

	assert.True(t, s.Jump("p1"))
	assert.Equal(t, DirBackward, s.LastDirection())

	assert.False(t, s.Jump("missing"))
	assert.Equal(t, 0, s.Index())
}

func TestStartNumberClamped(t *testing.T) {
	pages, options := threePages()
	s, err := NewPreloaded(pages, options, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Index())
}
