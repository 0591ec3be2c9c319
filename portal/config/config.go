package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-portal/pkg/kafka"
	"github.com/Astemirdum/library-portal/pkg/logger"
	"github.com/Astemirdum/library-portal/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"PORTAL_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"PORTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Session struct {
	Secret string `yaml:"secret" envconfig:"SESSION_SECRET" default:"your-secret-key"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Session  Session      `yaml:"session"`
	Kafka    kafka.Config `yaml:"kafka"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
