package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Adyen    AdyenConfig
}

type ServerConfig struct {
	Port int
	Env  string // "development", "production"
	// PublicURL is the externally reachable base URL of this service.
	PublicURL string
}

type DatabaseConfig struct {
	Host    string
	Port    string
	Name    string
	User    string
	Pass    string
	Charset string
}

type RedisConfig struct {
	Addr string
	Pass string
	DB   int
}

type AdyenConfig struct {
	APIKey          string
	MerchantAccount string
	// Mode is "test" or "live".
	Mode string
	// LiveBaseURL is the account-specific live checkout URL, required
	// when Mode is "live".
	LiveBaseURL string
	// OriginURL is the origin the Web SDK widget runs on.
	OriginURL string
	// DefaultLocale and DefaultCountry are fallbacks when a payment
	// carries no customer locale or billing country.
	DefaultLocale  string
	DefaultCountry string
	// PendingTTL is how long an open payment may stay unresolved before
	// the expiry job marks it expired.
	PendingTTL time.Duration
}

// Live reports whether live processing is configured.
func (a *AdyenConfig) Live() bool {
	return a.Mode == "live"
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", 8080)
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("APP_PUBLIC_URL", "http://localhost:8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_CHARSET", "utf8mb4")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ADYEN_MODE", "test")
	viper.SetDefault("ADYEN_DEFAULT_LOCALE", "en_US")
	viper.SetDefault("ADYEN_DEFAULT_COUNTRY", "NL")
	viper.SetDefault("ADYEN_PENDING_TTL", "168h")

	pendingTTL, err := time.ParseDuration(viper.GetString("ADYEN_PENDING_TTL"))
	if err != nil {
		pendingTTL = 7 * 24 * time.Hour
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      viper.GetInt("APP_PORT"),
			Env:       viper.GetString("APP_ENV"),
			PublicURL: viper.GetString("APP_PUBLIC_URL"),
		},
		Database: DatabaseConfig{
			Host:    viper.GetString("DB_HOST"),
			Port:    viper.GetString("DB_PORT"),
			Name:    viper.GetString("DB_NAME"),
			User:    viper.GetString("DB_USER"),
			Pass:    viper.GetString("DB_PASS"),
			Charset: viper.GetString("DB_CHARSET"),
		},
		Redis: RedisConfig{
			Addr: viper.GetString("REDIS_ADDR"),
			Pass: viper.GetString("REDIS_PASS"),
			DB:   viper.GetInt("REDIS_DB"),
		},
		Adyen: AdyenConfig{
			APIKey:          viper.GetString("ADYEN_API_KEY"),
			MerchantAccount: viper.GetString("ADYEN_MERCHANT_ACCOUNT"),
			Mode:            viper.GetString("ADYEN_MODE"),
			LiveBaseURL:     viper.GetString("ADYEN_LIVE_BASE_URL"),
			OriginURL:       viper.GetString("ADYEN_ORIGIN_URL"),
			DefaultLocale:   viper.GetString("ADYEN_DEFAULT_LOCALE"),
			DefaultCountry:  viper.GetString("ADYEN_DEFAULT_COUNTRY"),
			PendingTTL:      pendingTTL,
		},
	}

	if cfg.Database.Name == "" {
		log.Println("WARNING: DB_NAME is not set")
	}
	if cfg.Adyen.APIKey == "" {
		log.Println("WARNING: ADYEN_API_KEY is not set")
	}
	if cfg.Adyen.MerchantAccount == "" {
		log.Println("WARNING: ADYEN_MERCHANT_ACCOUNT is not set")
	}
	if cfg.Adyen.Live() && cfg.Adyen.LiveBaseURL == "" {
		log.Println("WARNING: ADYEN_MODE is live but ADYEN_LIVE_BASE_URL is not set")
	}

	return cfg, nil
}

// DSN returns the MySQL DSN string for GORM.
func (d *DatabaseConfig) DSN() string {
	return d.User + ":" + d.Pass + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Name + "?charset=" + d.Charset + "&parseTime=True&loc=Local"
}
