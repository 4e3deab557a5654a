package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []Card {
	return []Card{
		{
			Index:    0,
			Number:   1,
			Forms:    map[string]string{"latin": "unus", "greek": "heis (εἷς)"},
			Examples: []string{"unison", "uniform"},
		},
		{
			Index:  1,
			Number: 2,
			Forms:  map[string]string{"latin": "duo", "greek": "dyo (δύο)"},
		},
	}
}

func TestNew_EmbeddedDeck(t *testing.T) {
	svc, err := New(nil)
	require.NoError(t, err)

	require.Equal(t, 37, svc.Size())

	first, err := svc.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "unus", first.Forms["latin"])

	last, err := svc.At(svc.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, last.Number)
	assert.Equal(t, "mille", last.Forms["latin"])
}

func TestNewFromCards_IndexInvariant(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cards []Card) []Card
	}{
		{
			name: "gap",
			mutate: func(cards []Card) []Card {
				cards[1].Index = 2
				return cards
			},
		},
		{
			name: "duplicate",
			mutate: func(cards []Card) []Card {
				cards[1].Index = 0
				return cards
			},
		},
		{
			name: "swapped",
			mutate: func(cards []Card) []Card {
				cards[0].Index, cards[1].Index = 1, 0
				return cards
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromCards(tt.mutate(testCards()))
			require.Error(t, err)
		})
	}
}

func TestNewFromCards_RejectsInvalidEntry(t *testing.T) {
	cards := testCards()
	cards[0].Forms = nil

	_, err := NewFromCards(cards)
	require.Error(t, err)
}

func TestAt_OutOfRange(t *testing.T) {
	svc, err := NewFromCards(testCards())
	require.NoError(t, err)

	_, err = svc.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = svc.At(svc.Size())
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormatCard(t *testing.T) {
	svc, err := NewFromCards(testCards())
	require.NoError(t, err)

	withExamples, _ := svc.At(0)
	text := svc.FormatCard(withExamples)
	assert.Contains(t, text, "🔢 1")
	assert.Contains(t, text, "Латинский: unus")
	assert.Contains(t, text, "Греческий: heis (εἷς)")
	assert.Contains(t, text, "• unison")
	assert.Contains(t, text, "/next")

	noExamples, _ := svc.At(1)
	text = svc.FormatCard(noExamples)
	assert.NotContains(t, text, "Примеры")
}

func TestQuizPrompt_HidesNumber(t *testing.T) {
	svc, err := NewFromCards(testCards())
	require.NoError(t, err)

	card, _ := svc.At(1)
	prompt := svc.QuizPrompt(card)

	assert.Contains(t, prompt, "duo")
	assert.Contains(t, prompt, "dyo (δύο)")
	assert.NotContains(t, prompt, "2")
}
