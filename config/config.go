package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	TaxRate        float64
	CartStorageKey string

	CatalogLatencyMs   int
	CatalogFailureRate float64

	PaymentApiURL     string
	PaymentApiKey     string
	PaymentSecretKey  string
	PaymentApiVersion string
	PaymentDelayMs    int

	SendgridApiKey string
	EmailSender    string

	SuggestDebounceMs int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "learnflow.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		TaxRate:        getEnvFloat("TAX_RATE", 0.08),
		CartStorageKey: getEnv("CART_STORAGE_KEY", "learnflow_cart"),

		// Chaos knobs for the mock catalog/enrollment layer. Failure rate
		// stays 0 in production; tests raise it to exercise retry paths.
		CatalogLatencyMs:   getEnvInt("CATALOG_LATENCY_MS", 0),
		CatalogFailureRate: getEnvFloat("CATALOG_FAILURE_RATE", 0),

		PaymentApiURL:     getEnv("PAYMENT_API_URL", ""),
		PaymentApiKey:     getEnv("PAYMENT_API_KEY", "defaultSecret"),
		PaymentSecretKey:  getEnv("PAYMENT_SECRET_KEY", "defaultSecret"),
		PaymentApiVersion: getEnv("PAYMENT_API_VERSION", "2.0"),
		PaymentDelayMs:    getEnvInt("PAYMENT_DELAY_MS", 2000),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@learnflow.io"),

		SuggestDebounceMs: getEnvInt("SUGGEST_DEBOUNCE_MS", 300),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.PaymentApiURL == "" {
		log.Println("Warning: PAYMENT_API_URL not set. Payments run in sandbox mode.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
