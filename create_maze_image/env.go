package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Flag defaults that can be overridden by environment variables, or by a
// .env file in the working directory.
type envDefaults struct {
	PresetsFile string
	OutputFile  string
	LogLevel    string
	MaxSteps    int
}

// Loads the given env file (.env if empty), if it exists, and reads the MAZE_*
// variables. Variables that are already set take precedence over the file.
func loadEnvDefaults(envFile string) envDefaults {
	if envFile == "" {
		envFile = ".env"
	}
	// A missing env file isn't a problem; the defaults below still apply.
	_ = godotenv.Load(envFile)
	return envDefaults{
		PresetsFile: getEnvWithDefault("MAZE_PRESETS_FILE", ""),
		OutputFile:  getEnvWithDefault("MAZE_OUTPUT_FILE", ""),
		LogLevel:    getEnvWithDefault("MAZE_LOG_LEVEL", "info"),
		MaxSteps:    getEnvAsIntWithDefault("MAZE_MAX_STEPS", -1),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Values that don't
// parse are ignored.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	toReturn, e := strconv.Atoi(value)
	if e != nil {
		return defaultValue
	}
	return toReturn
}
