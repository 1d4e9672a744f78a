// Package config loads the mazesolve settings from the environment, after
// merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvAlgorithm  = "MAZE_ALGORITHM"
	EnvDelimiter  = "MAZE_DELIMITER"
	EnvAnimate    = "MAZE_ANIMATE"
	EnvFrameDelay = "MAZE_FRAME_DELAY"
	EnvCellPixels = "MAZE_CELL_PIXELS"
)

// ErrInvalidValue wraps every malformed environment value.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the CLI configuration values.
type Config struct {
	Algorithm  string        // search name, parsed by solver.ParseAlgorithm
	Delimiter  rune          // field separator of the maze file
	Animate    bool          // replay every path prefix instead of the final frame
	FrameDelay time.Duration // pause between animation frames
	CellPixels int           // tile size for PNG output
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Algorithm:  "bfs",
		Delimiter:  ',',
		FrameDelay: 50 * time.Millisecond,
		CellPixels: 12,
	}
}

// Load merges the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then reads Config from it. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv reads Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	cfg.Algorithm = getEnvWithDefault(EnvAlgorithm, cfg.Algorithm)
	if cfg.Delimiter, err = getEnvAsRune(EnvDelimiter, cfg.Delimiter); err != nil {
		return Config{}, err
	}
	if cfg.Animate, err = getEnvAsBool(EnvAnimate, cfg.Animate); err != nil {
		return Config{}, err
	}
	if cfg.FrameDelay, err = getEnvAsDuration(EnvFrameDelay, cfg.FrameDelay); err != nil {
		return Config{}, err
	}
	if cfg.CellPixels, err = getEnvAsInt(EnvCellPixels, cfg.CellPixels); err != nil {
		return Config{}, err
	}
	if cfg.CellPixels <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, EnvCellPixels, cfg.CellPixels)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, def int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidValue, key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s cannot be negative", ErrInvalidValue, key)
	}
	return v, nil
}

// getEnvAsRune accepts a single character; "\t" and "tab" mean a tab.
func getEnvAsRune(key string, def rune) (rune, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidValue, key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
