package main

import (
	"github.com/gakiokevin/myhotel/config"
	"github.com/gakiokevin/myhotel/di"
	"github.com/gakiokevin/myhotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
