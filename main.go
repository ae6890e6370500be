package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/valuevault/bank-server/api"
	"github.com/valuevault/bank-server/internal/auth"
	"github.com/valuevault/bank-server/internal/config"
	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/marketdata"
	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/operator"
	"github.com/valuevault/bank-server/internal/service"
	"github.com/valuevault/bank-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bank-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	store, err := storage.Open(context.Background(), envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Open")
		return
	}
	defer store.Close()

	notifier := notify.NewLogNotifier(logger)

	delegator := operator.NewOperatorDelegator(store, notifier, envConfig.LedgerWorkers)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.TokenTTL)
	svc := service.NewService(store, delegator, tokens)
	marketClient := marketdata.NewClient(logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
			Market:   marketClient,
			Storage:  store,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
