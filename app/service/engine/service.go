package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"etymonabot/app/client/telegram"
	"etymonabot/app/service/dispatch"
	"etymonabot/app/service/queue"
	"etymonabot/app/service/session"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	tgClient    *telegram.Client
	sessionSvc  *session.Service
	dispatchSvc *dispatch.Service
	queueSvc    *queue.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		tgClient:    do.MustInvoke[*telegram.Client](di),
		sessionSvc:  do.MustInvoke[*session.Service](di),
		dispatchSvc: do.MustInvoke[*dispatch.Service](di),
		queueSvc:    do.MustInvoke[*queue.Service](di),
	}, nil
}

// Run wires the transport into the queue and drains it one event at a
// time. The single consumer is what keeps per-user processing in arrival
// order.
func (s *Service) Run(ctx context.Context) error {
	if err := s.tgClient.RegisterCommands(); err != nil {
		return fmt.Errorf("could not register commands: %w", err)
	}

	s.tgClient.SetListener(func(userID, chatID int64, command, text string) {
		s.queueSvc.Add(queue.Event{
			UserID:  userID,
			ChatID:  chatID,
			Command: command,
			Text:    text,
		})
	})

	defer func() {
		slog.Info("Event loop stopped", "sessions", s.sessionSvc.Len())
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.tgClient.Run(ctx)
	})

	g.Go(func() error {
		return s.runLoop(ctx)
	})

	return g.Wait()
}

func (s *Service) runLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.queueSvc.Channel():
			if !ok {
				return context.Canceled
			}

			start := time.Now()
			s.dispatchSvc.Dispatch(ctx, ev)

			slog.Debug("Processed event",
				"user_id", ev.UserID,
				"command", ev.Command,
				"duration", time.Since(start))
		}
	}
}
