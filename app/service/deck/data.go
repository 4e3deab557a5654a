package deck

import (
	_ "embed"
)

//go:embed cards.yaml
var cardsData []byte

// Card is one study entry. The deck is fixed at process start: cards are
// never added, removed or reordered afterwards.
type Card struct {
	// Position in the deck, dense and unique 0..N-1
	Index int `yaml:"index"`
	// The numeral the card teaches, also the expected quiz answer
	Number int `yaml:"number" validate:"gt=0"`
	// Written forms keyed by source language ("latin", "greek")
	Forms map[string]string `yaml:"forms" validate:"required,min=1"`
	// English derivatives, possibly empty
	Examples []string `yaml:"examples"`
	// Optional free-form remark shown under the card
	Note string `yaml:"note"`
}
