package handler

import (
	"net/http"

	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/di"
	"github.com/gakiokevin/myhotel/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
