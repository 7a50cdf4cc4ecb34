// ════════════════════════════════════════════════════════════
// Path: config/app.go
// Application settings (env + .env via viper)
// ════════════════════════════════════════════════════════════

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings holds every runtime knob the server reads at startup.
type Settings struct {
	AppEnv string
	Port   string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string

	RedisURL string

	JWTSecret string
	JWTExpiry time.Duration

	FrontendURL string

	CloudinaryURL string

	ResendAPIKey string
	EmailFrom    string

	KafkaBrokers     []string
	KafkaTopicPrefix string

	LogFile      string
	LogMaxSizeMB int

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	LowStockThreshold  int
	RateLimitPerMinute int
}

// App is populated by Load and read everywhere else.
var App = defaultSettings()

func defaultSettings() *Settings {
	return &Settings{
		AppEnv:             "development",
		Port:               "8080",
		DBDriver:           "postgres",
		JWTExpiry:          24 * time.Hour,
		FrontendURL:        "http://localhost:3000",
		KafkaTopicPrefix:   "best-wishes",
		LowStockThreshold:  10,
		RateLimitPerMinute: 100,
	}
}

// Load reads .env (when present) and the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("[config.load] no .env file found, using process environment")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "best_wishes")
	v.SetDefault("SQLITE_PATH", "best_wishes.db")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("EMAIL_FROM", "Best Wishes <no-reply@bestwishes.lk>")
	v.SetDefault("KAFKA_TOPIC_PREFIX", "best-wishes")
	v.SetDefault("LOG_FILE", "logs/app.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		log.Printf("[config.load] ⚠️ invalid JWT_EXPIRY %q, using 24h", v.GetString("JWT_EXPIRY"))
		expiry = 24 * time.Hour
	}

	App = &Settings{
		AppEnv:             v.GetString("APP_ENV"),
		Port:               v.GetString("PORT"),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RedisURL:           v.GetString("REDIS_URL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTExpiry:          expiry,
		FrontendURL:        v.GetString("FRONTEND_URL"),
		CloudinaryURL:      v.GetString("CLOUDINARY_URL"),
		ResendAPIKey:       v.GetString("RESEND_API_KEY"),
		EmailFrom:          v.GetString("EMAIL_FROM"),
		KafkaBrokers:       splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopicPrefix:   v.GetString("KAFKA_TOPIC_PREFIX"),
		LogFile:            v.GetString("LOG_FILE"),
		LogMaxSizeMB:       v.GetInt("LOG_MAX_SIZE_MB"),
		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		LowStockThreshold:  v.GetInt("LOW_STOCK_THRESHOLD"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}
	return App
}

// IsProduction reports whether APP_ENV is production.
func (s *Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
