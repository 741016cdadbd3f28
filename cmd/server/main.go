package main

import (
	"github.com/conceptmap/backend/internal/server"
	"github.com/conceptmap/backend/internal/util"
	"github.com/conceptmap/backend/pkg/logger"
	"github.com/conceptmap/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
