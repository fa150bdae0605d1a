package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/internal/handlers/v1/advice"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/card"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/form"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/profile"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/session"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/settings"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/status"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/subscription"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/summary"
	"github.com/carson-networks/wallet-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/service"
	"github.com/carson-networks/wallet-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

type registrar interface {
	Register(api huma.API)
}

// Handler builds the gin engine with every route registered.
func (r *Rest) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	statusHandler := status.NewHandler(r.Storage)
	engine.Any("/status", gin.WrapF(logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler)))

	api := humagin.New(engine, huma.DefaultConfig("Wallet API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	svc := r.Service
	handlers := []registrar{
		card.NewListCardsHandler(svc.Card),
		card.NewSaveCardHandler(svc.Card),
		card.NewDeleteCardHandler(svc.Card),
		card.NewReminderHandler(svc.Card),
		card.NewPayFormHandler(svc.Card),
		transaction.NewListTransactionsHandler(svc.Transaction),
		transaction.NewSaveTransactionHandler(svc.Transaction),
		transaction.NewDeleteTransactionHandler(svc.Transaction),
		subscription.NewListSubscriptionsHandler(svc.Subscription),
		subscription.NewSaveSubscriptionHandler(svc.Subscription),
		subscription.NewDeleteSubscriptionHandler(svc.Subscription),
		summary.NewHandler(svc.Summary),
		session.NewHandler(svc.Session),
		form.NewCheckHandler(svc.Form),
		form.NewBlankHandler(svc.Form),
		settings.NewHandler(svc.Settings),
		profile.NewHandler(svc.Profile),
		advice.NewHandler(svc.Advice),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	return engine
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
