package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"0"`
	PlayerOne string `yaml:"player-one" env:"TICTACTOE_PLAYER_ONE"`
	PlayerTwo string `yaml:"player-two" env:"TICTACTOE_PLAYER_TWO"`
}

type Redis struct {
	Enabled   bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host      string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	DB        int           `yaml:"db" env:"TICTACTOE_REDIS_DB" env-default:"0"`
	ResultTTL time.Duration `yaml:"result-ttl" env:"TICTACTOE_REDIS_RESULT_TTL" env-default:"0s"`
}

// Load reads the yaml file at path and applies environment overrides. A missing
// file is not an error: the configuration then comes from the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
