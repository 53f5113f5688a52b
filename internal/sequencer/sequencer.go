// Package sequencer orchestrates traversal of an ordered page list.
// Pages come from one of two sources chosen at construction: a live
// PageSource queried incrementally with per-page option caching, or a
// fully preloaded in-memory list (daily challenges) that never fetches.
//
// The sequencer itself is synchronous; callers run source calls in
// their own goroutines (bubbletea commands) and hand results back via
// SetPages and Deliver. Option fetches carry a monotonic token so a
// stale response arriving after rapid paging is discarded instead of
// trusted.
package sequencer

import (
	"context"
	"fmt"

	"github.com/naghz/naghz/internal/content"
)

// PageSource is the page-store collaborator contract.
type PageSource interface {
	// ListPages returns the course's pages ordered by page number.
	ListPages(ctx context.Context, courseID string) ([]content.Page, error)

	// ListOptions returns a page's options ordered by option order.
	ListOptions(ctx context.Context, pageID string) ([]content.Option, error)
}

// Direction records which way the last navigation moved. It only picks
// the transition-animation variant; it has no correctness meaning.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
)

// FetchRequest asks the caller to load options for a page. Deliver the
// result with the same token; older tokens are ignored.
type FetchRequest struct {
	Token  uint64
	PageID string
}

// RenderPage is the flat bundle the lesson runtime consumes for the
// currently active page.
type RenderPage struct {
	content.Page
	Options []content.Option
}

// OptionByID resolves an option by its id.
func (r RenderPage) OptionByID(id int) (content.Option, bool) {
	for _, o := range r.Options {
		if o.ID == id {
			return o, true
		}
	}
	return content.Option{}, false
}

// Sequencer is the slider state machine over currentIndex ∈ [0, N-1].
type Sequencer struct {
	source    PageSource
	courseID  string
	preloaded bool

	pages   []content.Page
	options map[string][]content.Option

	index       int
	startNumber int
	dir         Direction

	token    uint64
	inflight map[string]uint64
}

// NewLive creates a sequencer that fetches pages and options from the
// source. startNumber is the 1-based page to resume at.
func NewLive(source PageSource, courseID string, startNumber int) *Sequencer {
	return &Sequencer{
		source:      source,
		courseID:    courseID,
		startNumber: startNumber,
		options:     make(map[string][]content.Option),
		inflight:    make(map[string]uint64),
	}
}

// NewPreloaded creates a sequencer over an in-memory page list with
// every page's options supplied up front. No fetch ever occurs in this
// mode.
func NewPreloaded(pages []content.Page, options map[string][]content.Option, startNumber int) (*Sequencer, error) {
	if err := content.ValidateSequence(pages); err != nil {
		return nil, err
	}
	s := &Sequencer{
		preloaded:   true,
		pages:       pages,
		startNumber: startNumber,
		options:     make(map[string][]content.Option),
		inflight:    make(map[string]uint64),
	}
	for id, opts := range options {
		s.options[id] = opts
	}
	for _, p := range pages {
		if needsOptions(p) && len(s.options[p.ID]) == 0 {
			return nil, fmt.Errorf("preloaded page %q has no options", p.ID)
		}
	}
	s.index = clampIndex(startNumber-1, len(pages))
	return s, nil
}

// Source returns the live source, nil in preloaded mode.
func (s *Sequencer) Source() PageSource { return s.source }

// CourseID returns the owning course id.
func (s *Sequencer) CourseID() string { return s.courseID }

// SetPages installs the fetched page list (live mode). The index lands
// on the requested start page, clamped into range.
func (s *Sequencer) SetPages(pages []content.Page) error {
	if err := content.ValidateSequence(pages); err != nil {
		return err
	}
	s.pages = pages
	s.index = clampIndex(s.startNumber-1, len(pages))
	return nil
}

// Loaded reports whether the page list has arrived.
func (s *Sequencer) Loaded() bool { return len(s.pages) > 0 }

// OptionsNeeded reports whether the current page still needs its
// options fetched and, if so, issues a tokened request. Cached pages
// and pages without options need nothing; a request already in flight
// for this page is not re-issued, so an option set is fetched at most
// once per page per session.
func (s *Sequencer) OptionsNeeded() (FetchRequest, bool) {
	if s.preloaded || !s.Loaded() {
		return FetchRequest{}, false
	}
	p := s.pages[s.index]
	if !needsOptions(p) {
		return FetchRequest{}, false
	}
	if _, ok := s.options[p.ID]; ok {
		return FetchRequest{}, false
	}
	if _, ok := s.inflight[p.ID]; ok {
		return FetchRequest{}, false
	}
	s.token++
	s.inflight[p.ID] = s.token
	return FetchRequest{Token: s.token, PageID: p.ID}, true
}

// Deliver hands a completed option fetch back to the sequencer. The
// result is cached only when the token is still the live one for its
// page; stale deliveries report false and are dropped. A failed fetch
// clears the in-flight slot so navigation back to the page retries.
func (s *Sequencer) Deliver(token uint64, pageID string, opts []content.Option, err error) bool {
	live, ok := s.inflight[pageID]
	if !ok || live != token {
		return false
	}
	delete(s.inflight, pageID)
	if err != nil {
		return false
	}
	s.options[pageID] = opts
	return true
}

// Ready reports whether the current page and its options are available.
func (s *Sequencer) Ready() bool {
	if !s.Loaded() {
		return false
	}
	p := s.pages[s.index]
	if !needsOptions(p) {
		return true
	}
	_, ok := s.options[p.ID]
	return ok
}

// Current returns the render bundle for the active page. ok is false
// while loading.
func (s *Sequencer) Current() (RenderPage, bool) {
	if !s.Ready() {
		return RenderPage{}, false
	}
	p := s.pages[s.index]
	return RenderPage{Page: p, Options: s.options[p.ID]}, true
}

// Next advances to the following page. Past the last page it is a
// silent no-op.
func (s *Sequencer) Next() bool {
	if !s.CanGoNext() {
		return false
	}
	s.index++
	s.dir = DirForward
	return true
}

// Previous steps back one page. Before the first page it is a silent
// no-op.
func (s *Sequencer) Previous() bool {
	if !s.CanGoPrevious() {
		return false
	}
	s.index--
	s.dir = DirBackward
	return true
}

// Jump moves directly to the page with the given id (score-driven
// branch targets). Unknown ids are a no-op.
func (s *Sequencer) Jump(pageID string) bool {
	for i, p := range s.pages {
		if p.ID == pageID {
			if i > s.index {
				s.dir = DirForward
			} else if i < s.index {
				s.dir = DirBackward
			}
			s.index = i
			return true
		}
	}
	return false
}

// CanGoNext reports whether a following page exists.
func (s *Sequencer) CanGoNext() bool {
	return s.Loaded() && s.index < len(s.pages)-1
}

// CanGoPrevious reports whether a preceding page exists.
func (s *Sequencer) CanGoPrevious() bool {
	return s.Loaded() && s.index > 0
}

// AtEnd reports whether the active page is the last one. Continuing
// from here is the caller's terminal signal.
func (s *Sequencer) AtEnd() bool {
	return s.Loaded() && s.index == len(s.pages)-1
}

// Index returns the zero-based current index.
func (s *Sequencer) Index() int { return s.index }

// Len returns the page count.
func (s *Sequencer) Len() int { return len(s.pages) }

// Progress returns the completed fraction, (index+1)/total.
func (s *Sequencer) Progress() float64 {
	if len(s.pages) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.pages))
}

// LastDirection returns the direction of the latest navigation.
func (s *Sequencer) LastDirection() Direction { return s.dir }

// needsOptions reports whether a page type carries an option list.
// Free-text pages collect a typed answer instead.
func needsOptions(p content.Page) bool {
	return p.IsTest() && p.Test != content.TestInput
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n && n > 0 {
		return n - 1
	}
	return i
}
