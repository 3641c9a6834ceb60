package config

import (
	"fmt"
	"math"
	"os"
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
	Env        Environment
	LogLevel   string
	ServerPort string
	StaticDir  string
	RawBodyLog bool
}

type HuggingFaceConfig struct {
	URL               string
	Token             string
	Model             string
	TimeoutSeconds    int
	RequestsPerSecond float64
	Burst             int
}

type AnalysisConfig struct {
	MaxInputChars     int
	UniformityWeight  float64
	DiversityWeight   float64
	PhrasesWeight     float64
	PunctuationWeight float64
	StructureWeight   float64
}

type UploadConfig struct {
	MaxFileBytes int64
}

type Config struct {
	App         AppConfig
	HuggingFace HuggingFaceConfig
	Analysis    AnalysisConfig
	Upload      UploadConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	return &Config{
		App: AppConfig{
			Env:        env,
			LogLevel:   getLogLevel(env),
			ServerPort: getEnv("APP_SERVER_PORT", "8080"),
			StaticDir:  getEnv("APP_STATIC_DIR", "./static"),
			RawBodyLog: getEnvBool("APP_RAW_BODY_LOG", false),
		},
		HuggingFace: HuggingFaceConfig{
			URL:               getEnv("HF_API_URL", "https://api-inference.huggingface.co"),
			Token:             getEnv("HF_API_TOKEN", ""),
			Model:             getEnv("HF_MODEL", "Hello-SimpleAI/chatgpt-detector-roberta"),
			TimeoutSeconds:    getEnvInt("HF_TIMEOUT_SECONDS", 5),
			RequestsPerSecond: getEnvFloat("HF_REQUESTS_PER_SECOND", 1.0),
			Burst:             getEnvInt("HF_BURST", 2),
		},
		Analysis: AnalysisConfig{
			MaxInputChars:     getEnvInt("ANALYSIS_MAX_INPUT_CHARS", 50000),
			UniformityWeight:  getEnvFloat("ANALYSIS_UNIFORMITY_WEIGHT", 0.25),
			DiversityWeight:   getEnvFloat("ANALYSIS_DIVERSITY_WEIGHT", 0.20),
			PhrasesWeight:     getEnvFloat("ANALYSIS_PHRASES_WEIGHT", 0.30),
			PunctuationWeight: getEnvFloat("ANALYSIS_PUNCTUATION_WEIGHT", 0.15),
			StructureWeight:   getEnvFloat("ANALYSIS_STRUCTURE_WEIGHT", 0.10),
		},
		Upload: UploadConfig{
			MaxFileBytes: getEnvInt64("UPLOAD_MAX_BYTES", 10<<20),
		},
	}, nil
}

// Validate rejects configurations the service cannot run with. A missing
// HF_API_TOKEN is not an error; the service then runs heuristics only.
func (c *Config) Validate() error {
	if c.Analysis.MaxInputChars <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_INPUT_CHARS must be positive")
	}
	if c.HuggingFace.TimeoutSeconds <= 0 {
		return fmt.Errorf("HF_TIMEOUT_SECONDS must be positive")
	}
	if c.HuggingFace.RequestsPerSecond <= 0 {
		return fmt.Errorf("HF_REQUESTS_PER_SECOND must be positive")
	}
	if c.HuggingFace.Burst < 1 {
		return fmt.Errorf("HF_BURST must be at least 1")
	}
	if c.Upload.MaxFileBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	sum := c.Analysis.UniformityWeight + c.Analysis.DiversityWeight + c.Analysis.PhrasesWeight +
		c.Analysis.PunctuationWeight + c.Analysis.StructureWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("analysis signal weights must sum to 1.0, got %v", sum)
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

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
