package main

import (
	"flag"

	"github.com/izeinnn/university-management-system/internal/pkg/logger"
	"github.com/izeinnn/university-management-system/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	if err := server.Run(*configPath); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
