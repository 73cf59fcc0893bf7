package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Business  BusinessConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BusinessConfig holds the business details printed on every document.
// It is loaded once at startup and passed into the renderer at call time.
type BusinessConfig struct {
	BusinessName      string
	AddressLine1      string
	AddressLine2      string
	AddressLine3      string
	Phone             string
	Email             string
	AccountNumber     string
	SortCode          string
	LogoPath          string
	DepositPercentage float64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// AddressLines returns the configured address as a list of non-empty lines.
func (b *BusinessConfig) AddressLines() []string {
	var lines []string
	for _, line := range []string{b.AddressLine1, b.AddressLine2, b.AddressLine3} {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "stagebill-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("BUSINESS_NAME", "Every Angle")
	viper.SetDefault("BUSINESS_ADDRESS_LINE1", "")
	viper.SetDefault("BUSINESS_ADDRESS_LINE2", "")
	viper.SetDefault("BUSINESS_ADDRESS_LINE3", "")
	viper.SetDefault("BUSINESS_PHONE", "")
	viper.SetDefault("BUSINESS_EMAIL", "")
	viper.SetDefault("BUSINESS_ACCOUNT_NUMBER", "")
	viper.SetDefault("BUSINESS_SORT_CODE", "")
	viper.SetDefault("BUSINESS_LOGO_PATH", "static/logo.png")
	viper.SetDefault("BUSINESS_DEPOSIT_PERCENTAGE", 20.0)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Business: BusinessConfig{
			BusinessName:      viper.GetString("BUSINESS_NAME"),
			AddressLine1:      viper.GetString("BUSINESS_ADDRESS_LINE1"),
			AddressLine2:      viper.GetString("BUSINESS_ADDRESS_LINE2"),
			AddressLine3:      viper.GetString("BUSINESS_ADDRESS_LINE3"),
			Phone:             viper.GetString("BUSINESS_PHONE"),
			Email:             viper.GetString("BUSINESS_EMAIL"),
			AccountNumber:     viper.GetString("BUSINESS_ACCOUNT_NUMBER"),
			SortCode:          viper.GetString("BUSINESS_SORT_CODE"),
			LogoPath:          viper.GetString("BUSINESS_LOGO_PATH"),
			DepositPercentage: viper.GetFloat64("BUSINESS_DEPOSIT_PERCENTAGE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
