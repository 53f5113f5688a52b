package lesson

import (
	"time"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/hearts"
)

// pagesLoadedMsg is sent when the course's page list has been fetched.
type pagesLoadedMsg struct {
	Title string
	Pages []content.Page
	Err   error
}

// optionsLoadedMsg is sent when one page's options have been fetched.
// Token ties the result to the sequencer request that asked for it.
type optionsLoadedMsg struct {
	Token  uint64
	PageID string
	Opts   []content.Option
	Err    error
}

// gradePollMsg is sent at short intervals while an AI grade is pending.
type gradePollMsg time.Time

// heartLedgerMsg is sent when a heart mutation has been persisted.
type heartLedgerMsg struct {
	Ledger hearts.Ledger
	Err    error
}

// lessonEndMsg is sent when the learner continues past the last page.
type lessonEndMsg struct{}
