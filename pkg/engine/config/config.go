// Package config loads maze settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the generator's settings
type Config struct {
	Width     int    // Maze width in cells
	Height    int    // Maze height in cells
	Seed      int64  // Random seed
	SeedSet   bool   // Seed was configured; otherwise the CLI picks one from the clock
	Color     bool   // Colour the rendered maze
	Decorate  bool   // Place doors, traps, loot and characters
	LocaleDir string // Directory holding translation catalogues
	Lang      string // Language of the message catalogue
}

// Defaults returns the settings used when nothing is configured
func Defaults() Config {
	return Config{
		Width:    16,
		Height:   10,
		Color:    true,
		Decorate: true,
		Lang:     "en_GB",
	}
}

// Load reads settings from the environment, after loading the given .env files
// (or ./.env when none are named). Missing files are skipped silently; a file
// that exists but cannot be read or parsed is an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Defaults()
	var err error

	if cfg.Width, err = getEnvAsInt("MAZE_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt("MAZE_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	_, cfg.SeedSet = os.LookupEnv("MAZE_SEED")
	if cfg.Color, err = getEnvAsBool("MAZE_COLOR", cfg.Color); err != nil {
		return Config{}, err
	}
	if cfg.Decorate, err = getEnvAsBool("MAZE_DECORATE", cfg.Decorate); err != nil {
		return Config{}, err
	}
	cfg.LocaleDir = getEnvWithDefault("MAZE_LOCALE_DIR", cfg.LocaleDir)
	cfg.Lang = getEnvWithDefault("MAZE_LANG", cfg.Lang)

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or the default if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsBool retrieves an environment variable as a boolean, or the default if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
