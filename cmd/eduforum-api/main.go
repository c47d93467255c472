package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/eduforum-dev/eduforum/internal/config"
	"github.com/eduforum-dev/eduforum/internal/logger"
	"github.com/eduforum-dev/eduforum/internal/router"
	"github.com/eduforum-dev/eduforum/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := cfg.Public.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	logger.Log.Info("Server started", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
