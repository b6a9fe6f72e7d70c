package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultAPIHost = "https://cardiologger.otterbagel.com/v1"

type Config struct {
	APIHost         string        `env:"CARDIOLOG_API_HOST" envDefault:"https://cardiologger.otterbagel.com/v1"`
	RefreshInterval time.Duration `env:"CARDIOLOG_REFRESH_INTERVAL" envDefault:"5s"`
	DefaultTimezone string        `env:"CARDIOLOG_DEFAULT_TIMEZONE" envDefault:"UTC"`
	DBPath          string        `env:"CARDIOLOG_DB_PATH"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
