package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/naghz/naghz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeartsChangedMsg announces a fresh heart ledger read. The app model
// intercepts it to refresh the header and then forwards it to the
// active screen, so both the global display and any screen gating on
// hearts stay in sync with the store.
type HeartsChangedMsg struct {
	Hearts int
}
