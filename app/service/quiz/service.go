package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"etymonabot/app/service/deck"
	"etymonabot/app/service/session"

	"github.com/samber/do"
)

var ErrNotANumber = errors.New("answer is not a number")

// Service drives a sequential quiz over the deck. It holds no per-user
// state itself: progress lives in the session mode and is passed in.
type Service struct {
	deckSvc *deck.Service
}

// Turn is the outcome of one quiz step: what to tell the user and the
// state to carry forward.
type Turn struct {
	Feedback string
	Prompt   string
	Summary  string
	State    session.InQuiz
	Done     bool
}

func New(di *do.Injector) (*Service, error) {
	return NewService(do.MustInvoke[*deck.Service](di)), nil
}

func NewService(deckSvc *deck.Service) *Service {
	return &Service{deckSvc: deckSvc}
}

// Begin starts a fresh quiz at the first card. An empty deck completes
// immediately with a zero summary.
func (s *Service) Begin() Turn {
	if s.deckSvc.Size() == 0 {
		return Turn{
			Summary: s.summary(0),
			Done:    true,
		}
	}

	card, _ := s.deckSvc.At(0)

	return Turn{
		Prompt: s.deckSvc.QuizPrompt(card),
		State:  session.InQuiz{Cursor: 0, Score: 0},
	}
}

// Answer grades one answer against the current card and advances the
// cursor. A non-numeric answer fails with ErrNotANumber and changes
// nothing.
func (s *Service) Answer(state session.InQuiz, raw string) (Turn, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Turn{}, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}

	card, err := s.deckSvc.At(state.Cursor)
	if err != nil {
		return Turn{}, fmt.Errorf("quiz cursor is broken: %w", err)
	}

	next := session.InQuiz{
		Cursor: state.Cursor + 1,
		Score:  state.Score,
	}

	var feedback string
	if value == card.Number {
		next.Score++
		feedback = "✅ Верно!"
	} else {
		feedback = fmt.Sprintf("❌ Неверно. Правильный ответ: %d", card.Number)
	}

	if next.Cursor == s.deckSvc.Size() {
		return Turn{
			Feedback: feedback,
			Summary:  s.summary(next.Score),
			State:    next,
			Done:     true,
		}, nil
	}

	nextCard, err := s.deckSvc.At(next.Cursor)
	if err != nil {
		return Turn{}, fmt.Errorf("quiz cursor is broken: %w", err)
	}

	return Turn{
		Feedback: feedback,
		Prompt:   s.deckSvc.QuizPrompt(nextCard),
		State:    next,
	}, nil
}

func (s *Service) summary(score int) string {
	return fmt.Sprintf("🏁 Викторина окончена! Результат: %d из %d", score, s.deckSvc.Size())
}
