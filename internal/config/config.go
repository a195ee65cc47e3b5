package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

type ExtractConfig struct {
	MaxFileSizeBytes int64
	WorkerCount      int
	SourceToken      string
}

type AnalysisConfig struct {
	DefaultReference string
	DefaultCandidate string
}

type Config struct {
	App      AppConfig
	Extract  ExtractConfig
	Analysis AnalysisConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		Extract: ExtractConfig{
			MaxFileSizeBytes: int64(getEnvInt("EXTRACT_MAX_FILE_SIZE_BYTES", 10*1024*1024)),
			WorkerCount:      getEnvInt("EXTRACT_WORKER_COUNT", defaultWorkerCount()),
			SourceToken:      getEnv("EXTRACT_SOURCE_TOKEN", ""),
		},
		Analysis: AnalysisConfig{
			DefaultReference: getEnv("ANALYSIS_DEFAULT_REFERENCE", "original.txt"),
			DefaultCandidate: getEnv("ANALYSIS_DEFAULT_CANDIDATE", "student.txt"),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Extract.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("EXTRACT_MAX_FILE_SIZE_BYTES must be positive")
	}
	if c.Extract.WorkerCount < 1 {
		return fmt.Errorf("EXTRACT_WORKER_COUNT must be at least 1")
	}
	if c.App.HttpTimeoutSeconds < 1 {
		return fmt.Errorf("APP_HTTP_TIMEOUT_SECONDS must be at least 1")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

// extraction is I/O bound, but there is no point spawning more workers than
// cores for batches that are usually a handful of files
func defaultWorkerCount() int {
	return min(max(runtime.NumCPU(), 1), 8)
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
