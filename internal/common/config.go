package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM        LLMConfig
	Extraction ExtractionConfig
	Store      StoreConfig
	Server     ServerConfig
	Encryption EncryptionConfig
}

// LLMConfig holds model-provider configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration

	// Throttling between sequential evaluation calls.
	CriterionDelay time.Duration
	ChapterDelay   time.Duration
}

// ExtractionConfig holds PDF text-extraction configuration
type ExtractionConfig struct {
	Pdftotext string
	Timeout   time.Duration
}

// StoreConfig holds report-store configuration
type StoreConfig struct {
	DataDir    string
	RubricPath string
	ExpertPath string
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// EncryptionConfig holds field-encryption configuration
type EncryptionConfig struct {
	Enabled  bool
	Password string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:         getEnv("GROQ_API_KEY", ""),
			BaseURL:        getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:          getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.3),
			Timeout:        getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			CriterionDelay: getEnvAsDuration("LLM_CRITERION_DELAY", 1*time.Second),
			ChapterDelay:   getEnvAsDuration("LLM_CHAPTER_DELAY", 2*time.Second),
		},
		Extraction: ExtractionConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Timeout:   getEnvAsDuration("PDFTOTEXT_TIMEOUT", 2*time.Minute),
		},
		Store: StoreConfig{
			DataDir:    getEnv("AUDIT_DATA_DIR", "data"),
			RubricPath: getEnv("RUBRIC_PATH", "config/grille_pedagogique.json"),
			ExpertPath: getEnv("SUBJECT_EXPERTS_PATH", "config/subject_experts.json"),
		},
		Server: ServerConfig{
			GRPCAddr: ":" + getEnv("PORT", "8080"),
		},
		Encryption: EncryptionConfig{
			Enabled:  getEnvAsBool("ENCRYPT_REPORTS", false),
			Password: getEnv("ENCRYPTION_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
