// internal/config/loader.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Переменные окружения, переопределяющие значения из файла.
const (
	EnvSeed             = "HERD_SEED"
	EnvGameDuration     = "HERD_GAME_DURATION"
	EnvCollectionRadius = "HERD_COLLECTION_RADIUS"
	EnvMaxGroupSize     = "HERD_MAX_GROUP_SIZE"
	EnvMaxAnimals       = "HERD_MAX_ANIMALS"
	EnvSpawnIntervalMin = "HERD_SPAWN_INTERVAL_MIN"
	EnvSpawnIntervalMax = "HERD_SPAWN_INTERVAL_MAX"
	EnvFollowSlack      = "HERD_FOLLOW_SLACK"
	EnvPprofAddr        = "HERD_PPROF_ADDR"
)

// Load собирает конфигурацию: значения по умолчанию, затем JSON-файл
// (если путь не пустой), затем .env и переменные окружения.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile читает JSON поверх текущих значений. Отсутствующие в файле поля
// сохраняют прежние значения.
func (c *Config) LoadFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	log.Printf("Loaded config from %s", path)
	return nil
}

// ApplyEnv подгружает envFile через godotenv (отсутствие файла не ошибка)
// и применяет переменные HERD_*.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var errs []error
	setFloat := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = seed
		}
	}
	setFloat(EnvGameDuration, &c.GameDuration)
	setFloat(EnvCollectionRadius, &c.CollectionRadius)
	setInt(EnvMaxGroupSize, &c.MaxGroupSize)
	setInt(EnvMaxAnimals, &c.MaxAnimals)
	setFloat(EnvSpawnIntervalMin, &c.SpawnIntervalMin)
	setFloat(EnvSpawnIntervalMax, &c.SpawnIntervalMax)
	setFloat(EnvFollowSlack, &c.FollowSlack)
	if v, ok := os.LookupEnv(EnvPprofAddr); ok {
		c.PprofAddr = v
	}
	return errors.Join(errs...)
}
