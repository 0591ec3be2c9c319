package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/library-portal/portal/app"
	"github.com/Astemirdum/library-portal/portal/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
