package config

import (
	"time"

	pkgconfig "github.com/Hiago-Cavalcante/furia-fan-chat/pkg/config"
)

type Config struct {
	Server    ServerConfig
	Bot       BotConfig
	Simulator SimulatorConfig
	Seed      SeedConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type BotConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	Probability float64       `mapstructure:"probability"`
}

type SimulatorConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	ScoreCap int           `mapstructure:"score_cap"`
}

type SeedConfig struct {
	File string `mapstructure:"file"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("bot.interval", "30s")
	v.SetDefault("bot.probability", 0.2)
	v.SetDefault("simulator.interval", "60s")
	v.SetDefault("simulator.score_cap", 16)
	v.SetDefault("seed.file", "")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("bot.interval", "BOT_INTERVAL")
	v.BindEnv("bot.probability", "BOT_PROBABILITY")
	v.BindEnv("simulator.interval", "SIM_INTERVAL")
	v.BindEnv("simulator.score_cap", "SCORE_CAP")
	v.BindEnv("seed.file", "SEED_FILE")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
