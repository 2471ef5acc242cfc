// Package config reads runtime settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/milk9111/mazerunner/levels"
)

// Config holds the settings command-line flags may override.
type Config struct {
	Level string // embedded level name
	Coins int    // coin count override, 0 keeps the level's
	Seed  int64  // coin placement seed, 0 picks one from the clock
	Debug bool   // hot reload, clipboard dump and on-screen diagnostics
}

const (
	EnvLevel = "MAZE_LEVEL"
	EnvCoins = "MAZE_COINS"
	EnvSeed  = "MAZE_SEED"
	EnvDebug = "MAZE_DEBUG"
)

func Default() Config {
	return Config{Level: levels.DefaultLevel}
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. A missing .env file is not an error. Variables already
// set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file: %w", err)
		}
		log.Printf("config: no .env file, using environment")
	}

	cfg := Default()
	cfg.Level = getEnvWithDefault(EnvLevel, cfg.Level)

	var err error
	if cfg.Coins, err = getEnvAsInt(EnvCoins, cfg.Coins); err != nil {
		return Config{}, err
	}
	if cfg.Coins < 0 {
		return Config{}, fmt.Errorf("config: %s must not be negative", EnvCoins)
	}
	seed, err := getEnvAsInt(EnvSeed, 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.Debug, err = getEnvAsBool(EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return value, nil
}
