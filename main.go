package main

import (
	"github.com/CampusOrbit/mentoring_service/config"
	"github.com/CampusOrbit/mentoring_service/infra/logger"
	"github.com/CampusOrbit/mentoring_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg)

	api.StartServer(cfg)
}
