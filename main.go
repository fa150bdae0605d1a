package main

import (
	"sync"

	"github.com/goodsign/monday"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/api"
	"github.com/carson-networks/wallet-server/internal/advisor"
	"github.com/carson-networks/wallet-server/internal/config"
	"github.com/carson-networks/wallet-server/internal/logging"
	"github.com/carson-networks/wallet-server/internal/operator"
	"github.com/carson-networks/wallet-server/internal/service"
	"github.com/carson-networks/wallet-server/internal/settings"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.Info("wallet-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	sessions := state.NewRegistry()
	op := operator.NewOperatorDelegator(dbStorage, sessions)
	op.Start()
	defer op.Stop()

	svc := service.NewService(service.Dependencies{
		Storage:  dbStorage,
		Sessions: sessions,
		Operator: op,
		Settings: settings.NewFileStore(envConfig.SettingsDir),
		Advisor: advisor.NewClient(advisor.Config{
			APIKey:      envConfig.OpenAIAPIKey,
			BaseURL:     envConfig.OpenAIBaseURL,
			Model:       envConfig.OpenAIModel,
			VisionModel: envConfig.OpenAIVisionModel,
			Timeout:     envConfig.AITimeout,
		}),
		MonthLocale: monday.Locale(envConfig.MonthLocale),
	})

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Storage: dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
