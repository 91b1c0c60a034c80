package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/config"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/api/sheets"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/api/telegram"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/service"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/store"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	location, err := time.LoadLocation(cfg.Bot.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Bot.Timezone).Msg("load timezone")
	}

	messenger, err := telegram.New(telegram.Options{
		Token:         cfg.Telegram.BotToken,
		UpdatesType:   cfg.Telegram.UpdatesType,
		ServerAddress: cfg.Telegram.ServerAddress,
		WebhookURL:    cfg.Telegram.WebhookURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create telegram messenger")
	}

	apis := service.APIs{
		Messenger: messenger,
		Gateway: sheets.New(sheets.Options{
			ScriptURL: cfg.Gateway.ScriptURL,
			Token:     cfg.Gateway.Token,
			Timeout:   cfg.Gateway.Timeout,
		}),
	}

	sessionStore := store.NewSessionStore(&store.SessionStoreOptions{
		Logger:        logger,
		TTL:           cfg.Bot.SessionTTL,
		SweepInterval: cfg.Bot.SweepInterval,
	})
	stores := service.Stores{
		Session: sessionStore,
	}

	handler := service.NewHandler(&service.HandlerOptions{
		Logger:   logger,
		APIs:     apis,
		Stores:   stores,
		Location: location,
	})

	event := service.NewEvent(&service.EventOptions{
		Logger:  logger,
		APIs:    apis,
		Stores:  stores,
		Handler: handler,
		OwnerID: cfg.Bot.OwnerID,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessionStore.RunSweep(ctx)

	keepAlive := newKeepAliveServer()
	go func() {
		err := keepAlive.ListenAndServe(":" + cfg.KeepAlive.Port)
		if err != nil {
			logger.Error().Err(err).Msg("start keep-alive server")
		}
	}()

	logger.Info().Str("updatesType", cfg.Telegram.UpdatesType).Msg("bot started")

	event.Listen(ctx)

	err = keepAlive.Shutdown()
	if err != nil {
		logger.Error().Err(err).Msg("shutdown keep-alive server")
	}

	err = messenger.Close()
	if err != nil {
		logger.Error().Err(err).Msg("close messenger")
	}

	logger.Info().Msg("bot stopped")
}

// newKeepAliveServer builds the tiny health server the hosting platform
// polls to keep the instance awake.
func newKeepAliveServer() *fasthttp.Server {
	r := router.New()
	r.GET("/", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	})

	return &fasthttp.Server{Handler: r.Handler}
}
