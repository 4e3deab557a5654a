package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"etymonabot/app/client/telegram"
	"etymonabot/app/service/deck"
	"etymonabot/app/service/explain"
	"etymonabot/app/service/queue"
	"etymonabot/app/service/quiz"
	"etymonabot/app/service/session"

	"github.com/samber/do"
)

// Sink delivers reply text to a chat.
type Sink interface {
	SendReply(chatID int64, text string, choices []string) error
}

// Explainer produces the word breakdown. The call may take a while; the
// dispatcher runs it off the event loop.
type Explainer interface {
	Explain(ctx context.Context, word string) (string, error)
}

// Service routes every inbound event by (current mode, event kind). One
// event is processed at a time; the only concurrent piece is the
// explanation goroutine, which sends replies but never touches sessions.
type Service struct {
	sessionSvc *session.Service
	deckSvc    *deck.Service
	quizSvc    *quiz.Service
	explainSvc Explainer
	sink       Sink
}

func New(di *do.Injector) (*Service, error) {
	return NewService(
		do.MustInvoke[*session.Service](di),
		do.MustInvoke[*deck.Service](di),
		do.MustInvoke[*quiz.Service](di),
		do.MustInvoke[*explain.Service](di),
		do.MustInvoke[*telegram.Client](di),
	), nil
}

func NewService(
	sessionSvc *session.Service,
	deckSvc *deck.Service,
	quizSvc *quiz.Service,
	explainSvc Explainer,
	sink Sink,
) *Service {
	return &Service{
		sessionSvc: sessionSvc,
		deckSvc:    deckSvc,
		quizSvc:    quizSvc,
		explainSvc: explainSvc,
		sink:       sink,
	}
}

// Dispatch handles one event. A command always wins over whatever dialog
// the user was in: the interrupted flow's progress is discarded.
func (s *Service) Dispatch(ctx context.Context, ev queue.Event) {
	sess := s.sessionSvc.GetOrCreate(ev.UserID)

	switch ev.Command {
	case "start":
		s.send(ev.ChatID, welcomeText, nil)
	case "explain":
		s.handleExplainCommand(ctx, ev)
	case "cards":
		s.handleCards(ev)
	case "next":
		s.handleNext(ev, sess)
	case "quiz":
		s.handleQuiz(ev)
	case "":
		s.handleText(ctx, ev, sess)
	default:
		s.send(ev.ChatID, helpText, nil)
	}
}

func (s *Service) handleExplainCommand(ctx context.Context, ev queue.Event) {
	word := strings.TrimSpace(ev.Text)
	if word == "" {
		s.sessionSvc.SetMode(ev.UserID, session.AwaitingWord{})
		s.send(ev.ChatID, askWordText, nil)
		return
	}

	// inline argument: skip the dialog entirely
	s.startExplanation(ctx, ev.UserID, ev.ChatID, word)
}

func (s *Service) handleCards(ev queue.Event) {
	if s.deckSvc.Size() == 0 {
		s.sessionSvc.SetMode(ev.UserID, session.Idle{})
		s.send(ev.ChatID, emptyDeckText, nil)
		return
	}

	card, err := s.deckSvc.At(0)
	if err != nil {
		slog.Error("Failed to read first card", "error", err)
		s.send(ev.ChatID, fallbackText, nil)
		return
	}

	s.sessionSvc.SetMode(ev.UserID, session.BrowsingCards{Cursor: 0})
	s.send(ev.ChatID, s.deckSvc.FormatCard(card), []string{"/next"})
}

func (s *Service) handleNext(ev queue.Event, sess session.UserSession) {
	mode, ok := sess.Mode.(session.BrowsingCards)
	if !ok {
		s.send(ev.ChatID, helpText, nil)
		return
	}

	if mode.Cursor+1 >= s.deckSvc.Size() {
		// stay on the last card, no wraparound
		s.send(ev.ChatID, lastCardText, []string{"/cards", "/quiz"})
		return
	}

	card, err := s.deckSvc.At(mode.Cursor + 1)
	if err != nil {
		slog.Error("Failed to read card", "cursor", mode.Cursor+1, "error", err)
		s.send(ev.ChatID, fallbackText, nil)
		return
	}

	s.sessionSvc.SetMode(ev.UserID, session.BrowsingCards{Cursor: mode.Cursor + 1})
	s.send(ev.ChatID, s.deckSvc.FormatCard(card), []string{"/next"})
}

func (s *Service) handleQuiz(ev queue.Event) {
	turn := s.quizSvc.Begin()

	if turn.Done {
		s.sessionSvc.SetMode(ev.UserID, session.Idle{})
		s.send(ev.ChatID, turn.Summary, nil)
		return
	}

	s.sessionSvc.SetMode(ev.UserID, turn.State)
	s.send(ev.ChatID, turn.Prompt, nil)
}

func (s *Service) handleText(ctx context.Context, ev queue.Event, sess session.UserSession) {
	switch mode := sess.Mode.(type) {
	case session.AwaitingWord:
		word := strings.TrimSpace(ev.Text)
		if word == "" {
			s.send(ev.ChatID, emptyWordText, nil)
			return
		}

		s.startExplanation(ctx, ev.UserID, ev.ChatID, word)
	case session.InQuiz:
		s.handleAnswer(ev, mode)
	case session.Idle, session.BrowsingCards:
		s.send(ev.ChatID, helpText, nil)
	}
}

func (s *Service) handleAnswer(ev queue.Event, mode session.InQuiz) {
	turn, err := s.quizSvc.Answer(mode, ev.Text)
	if errors.Is(err, quiz.ErrNotANumber) {
		s.send(ev.ChatID, notANumberText, nil)
		return
	}
	if err != nil {
		slog.Error("Quiz answer failed", "user_id", ev.UserID, "error", err)
		s.sessionSvc.SetMode(ev.UserID, session.Idle{})
		s.send(ev.ChatID, fallbackText, nil)
		return
	}

	if turn.Done {
		s.sessionSvc.SetMode(ev.UserID, session.Idle{})
		s.send(ev.ChatID, turn.Feedback+"\n\n"+turn.Summary, nil)
		return
	}

	s.sessionSvc.SetMode(ev.UserID, turn.State)
	s.send(ev.ChatID, turn.Feedback+"\n\n"+turn.Prompt, nil)
}

// startExplanation resets the session to idle first, then runs the LLM
// call off the loop. The goroutine only sends chat replies: a result
// landing after the user started something else can never clobber the
// newer mode.
func (s *Service) startExplanation(ctx context.Context, userID, chatID int64, word string) {
	s.sessionSvc.SetMode(userID, session.Idle{})
	s.send(chatID, thinkingText+word, nil)

	go func() {
		text, err := s.explainSvc.Explain(ctx, word)
		if err != nil {
			slog.Error("Explanation failed",
				"word", word,
				"error", err,
			)
			s.send(chatID, fallbackText, nil)
			return
		}

		s.send(chatID, text, nil)
	}()
}

func (s *Service) send(chatID int64, text string, choices []string) {
	if err := s.sink.SendReply(chatID, text, choices); err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}
