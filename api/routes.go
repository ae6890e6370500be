package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/valuevault/bank-server/internal/handlers/v1/account"
	authhandlers "github.com/valuevault/bank-server/internal/handlers/v1/auth"
	"github.com/valuevault/bank-server/internal/handlers/v1/ledgerops"
	"github.com/valuevault/bank-server/internal/handlers/v1/market"
	"github.com/valuevault/bank-server/internal/handlers/v1/status"
	"github.com/valuevault/bank-server/internal/handlers/v1/transaction"
	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/marketdata"
	"github.com/valuevault/bank-server/internal/operator"
	"github.com/valuevault/bank-server/internal/service"
	"github.com/valuevault/bank-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Market   *marketdata.Client
	Storage  *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("ValueVault Bank", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)

	authhandlers.NewRegisterHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewLoginHandler(r.Service.Auth).Register(humaAPI)
	authhandlers.NewMeHandler(r.Service.Auth).Register(humaAPI)

	ledgerops.NewDepositHandler(r.Operator).Register(humaAPI)
	ledgerops.NewWithdrawHandler(r.Operator).Register(humaAPI)
	ledgerops.NewTransferHandler(r.Operator).Register(humaAPI)
	ledgerops.NewMoveHandler(r.Operator).Register(humaAPI)

	account.NewGetBalanceHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	market.NewQuotesHandler(r.Market).Register(humaAPI)
	market.NewRatesHandler(r.Market).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
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

// requestLogging attaches a LogData to every request and emits one structured
// line when the handler completes.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	logData.AddData("method", ctx.Method())
	logData.AddData("path", ctx.URL().Path)

	endTimer := logData.AddTiming("duration")
	next(huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData)))
	endTimer()

	logData.AddData("status", ctx.Status())
	logData.Log().Info("Handler.Complete")
}
