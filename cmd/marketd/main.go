package main

import (
	"fmt"
	"net/http"

	"github.com/NftDex/marketplace-ledger/generated/dic"
	"github.com/NftDex/marketplace-ledger/internal/config"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var container *dic.Container

func main() {
	config.Init("marketd")
	container, _ = dic.NewContainer()

	go health()

	zap.L().With(zap.String("port", config.Get().HealthPort)).Info("Marketplace Started")

	container.GetDaemon().Execute()
}

func health() {
	if err := http.ListenAndServe(":"+config.Get().HealthPort, router()); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to start health endpoint")
	}
}

func router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "OK")
	}).Methods("GET")

	return r
}
