package queue

import (
	"log/slog"

	"github.com/samber/do"
)

const bufferSize = 64

var _ do.Shutdownable = (*Service)(nil)

type Service struct {
	queue chan Event
}

// Event is a single inbound chat message, already split by the transport
// into a bare command name and its remaining text.
type Event struct {
	UserID  int64
	ChatID  int64
	Command string
	Text    string
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		queue: make(chan Event, bufferSize),
	}, nil
}

func (s *Service) Add(ev Event) {
	defer func() {
		if r := recover(); r != nil {

		}
	}()

	select {
	case s.queue <- ev:
	default:
		slog.Warn("event queue is full",
			"user_id", ev.UserID)
	}
}

func (s *Service) Channel() <-chan Event {
	return s.queue
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
