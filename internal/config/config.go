package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3" validate:"gte=1,lte=16"`
	Window    Window `yaml:"window"`
	Redis     Redis  `yaml:"redis"`
}

type Window struct {
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic Tac Toe" validate:"required"`
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"800" validate:"gte=200"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600" validate:"gte=200"`
}

// Redis is optional. The scoreboard stays in memory while Host is empty.
type Redis struct {
	Host      string `yaml:"host" env:"REDIS_HOST"`
	Port      string `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required_with=Host"`
	KeyPrefix string `yaml:"key-prefix" env:"REDIS_KEY_PREFIX" env-default:"tictactoe" validate:"required"`
}

// MustLoad - loads config.yml when it exists, the environment otherwise, and panics on invalid values.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - same as MustLoad but returns the error.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, err)
	}

	return config, nil
}

// UsesRedis reports whether results go to redis instead of memory.
func (that *Redis) UsesRedis() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
