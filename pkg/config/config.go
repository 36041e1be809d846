package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"

	errorvalues "github.com/limbo/mindful/internal/error_values"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the env file once. A missing file is fine: settings may come
// straight from the process environment.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("JOURNAL_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// Require returns the value of key or a descriptive error when it is empty.
func (c *Config) Require(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s (set it in the environment or in %s)", errorvalues.ErrMissingSetting, key, defaultEnvFile)
	}
	return v, nil
}
