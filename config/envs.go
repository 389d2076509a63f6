package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Height    int    // Number of rows of every generated maze
	Width     int    // Number of columns of every generated maze
	Algorithm string // Name of the generation algorithm
	Seed      int64  // Base random seed, 0 means time based
	Count     int    // Number of mazes generated per run
	Workers   int    // Maximum number of concurrent generations
	Debug     bool   // Print the consistency report of every maze
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return cfg
}

// load populates the Config struct from the environment, falling back to defaults.
func load() (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.Height, err = getEnvAsIntWithDefault("MAZE_HEIGHT", 8); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsIntWithDefault("MAZE_WIDTH", 12); err != nil {
		return Config{}, err
	}
	if cfg.Count, err = getEnvAsIntWithDefault("MAZE_COUNT", 1); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvAsIntWithDefault("MAZE_WORKERS", 4); err != nil {
		return Config{}, err
	}

	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	debug := getEnvWithDefault("MAZE_DEBUG", "false")
	if cfg.Debug, err = strconv.ParseBool(debug); err != nil {
		return Config{}, fmt.Errorf("environment variable MAZE_DEBUG must be a boolean: %w", err)
	}

	cfg.Algorithm = getEnvWithDefault("MAZE_ALGORITHM", "exploration")

	if cfg.Count <= 0 {
		return Config{}, fmt.Errorf("environment variable MAZE_COUNT must be positive, got %d", cfg.Count)
	}
	if cfg.Workers <= 0 {
		return Config{}, fmt.Errorf("environment variable MAZE_WORKERS must be positive, got %d", cfg.Workers)
	}

	return cfg, nil
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
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

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
