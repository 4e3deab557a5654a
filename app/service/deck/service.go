package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/go-playground/validator/v10"
	"github.com/samber/do"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

var ErrOutOfRange = errors.New("card index out of range")

// Service is the read-only card deck. It is safe for concurrent use
// without locking.
type Service struct {
	cards []Card
}

func New(_ *do.Injector) (*Service, error) {
	var cards []Card

	if err := yaml.Unmarshal(cardsData, &cards); err != nil {
		return nil, oops.Errorf("failed to parse deck data: %w", err)
	}

	return NewFromCards(cards)
}

// NewFromCards builds a deck from explicit entries, enforcing the index
// invariant: unique and dense 0..N-1.
func NewFromCards(cards []Card) (*Service, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	seen := make(map[int]bool, len(cards))
	for i, card := range cards {
		if err := validate.Struct(card); err != nil {
			return nil, oops.Errorf("failed to validate card %d: %w", i, err)
		}

		if card.Index != i {
			return nil, oops.Errorf("deck index is not dense: card %d has index %d", i, card.Index)
		}
		if seen[card.Index] {
			return nil, oops.Errorf("duplicate card index %d", card.Index)
		}
		seen[card.Index] = true
	}

	return &Service{cards: cards}, nil
}

func (s *Service) Size() int {
	return len(s.cards)
}

func (s *Service) At(index int) (Card, error) {
	if index < 0 || index >= len(s.cards) {
		return Card{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(s.cards))
	}

	return s.cards[index], nil
}

// FormatCard renders the full study view of a card, answer included.
func (s *Service) FormatCard(card Card) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("🔢 %d\n", card.Number))
	builder.WriteString(fmt.Sprintf("🇱🇦 Латинский: %s\n", card.Forms["latin"]))
	builder.WriteString(fmt.Sprintf("🇬🇷 Греческий: %s\n", card.Forms["greek"]))

	if len(card.Examples) > 0 {
		builder.WriteString("\n📘 Примеры:\n")

		bullets := pie.Map(card.Examples, func(ex string) string {
			return "• " + ex
		})
		builder.WriteString(strings.Join(bullets, "\n"))
		builder.WriteString("\n")
	}

	if card.Note != "" {
		builder.WriteString(fmt.Sprintf("\n💡 %s\n", card.Note))
	}

	builder.WriteString("\n➡️ Напиши /next, чтобы продолжить")

	return builder.String()
}

// QuizPrompt renders the question view of a card: written forms only,
// never the number.
func (s *Service) QuizPrompt(card Card) string {
	return fmt.Sprintf("🇱🇦 %s / 🇬🇷 %s\nКакое это число? Напиши его цифрами.",
		card.Forms["latin"], card.Forms["greek"])
}
