package main

import (
	"context"
	"etymonabot/app/client/telegram"
	"etymonabot/app/config"
	"etymonabot/app/service/deck"
	"etymonabot/app/service/dispatch"
	"etymonabot/app/service/engine"
	"etymonabot/app/service/explain"
	"etymonabot/app/service/queue"
	"etymonabot/app/service/quiz"
	"etymonabot/app/service/session"
	"etymonabot/app/util/mylog"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, telegram.NewClient)
	do.Provide(di, deck.New)
	do.Provide(di, explain.New)
	do.Provide(di, session.New)
	do.Provide(di, quiz.New)
	do.Provide(di, queue.New)
	do.Provide(di, dispatch.New)
	do.Provide(di, engine.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go func() {
		if err := do.MustInvoke[*engine.Service](di).Run(appCtx); err != nil {
			slog.Error("Engine stopped", "error", err)
			cancel()
		}
	}()

	<-appCtx.Done()
}
