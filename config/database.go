package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// CmsDB is only set for the postgres driver; readiness checks and raw aggregates use it.
	CmsDB *pgxpool.Pool

	CmsGorm *gorm.DB
)

func InitDB() {
	switch App.DBDriver {
	case "sqlite":
		initSQLite()
	default:
		initPgx()
		initGORM()
	}
}

func postgresURL() string {
	if App.DatabaseURL != "" {
		return App.DatabaseURL
	}
	log.Println("⚠️ DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		App.DBUser, App.DBPassword, App.DBHost, App.DBPort, App.DBName,
	)
}

func gormLogger() logger.Interface {
	if App.IsProduction() {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.Default.LogMode(logger.Info)
}

func initPgx() {
	var err error
	CmsDB, err = pgxpool.New(context.Background(), postgresURL())
	if err != nil {
		log.Fatalf("❌ Unable to connect to database: %v", err)
	}

	if err = CmsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Database ping failed: %v", err)
	}

	log.Println("✅ Database connected (pgx)")
}

func initGORM() {
	var err error
	CmsGorm, err = gorm.Open(postgres.Open(postgresURL()), &gorm.Config{
		Logger:  gormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := CmsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Database connected (GORM)")
}

func initSQLite() {
	db, err := OpenSQLite(App.SQLitePath)
	if err != nil {
		log.Fatalf("❌ Failed to open sqlite database: %v", err)
	}
	CmsGorm = db
	log.Printf("✅ Database connected (sqlite: %s)", App.SQLitePath)
}

// OpenSQLite opens a single-connection sqlite database. Pass ":memory:" for tests.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases shared across queries
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Ping checks every configured backing store.
func Ping(ctx context.Context) map[string]string {
	status := map[string]string{}

	if CmsGorm == nil {
		status["database"] = "not configured"
	} else if sqlDB, err := CmsGorm.DB(); err != nil {
		status["database"] = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status["database"] = err.Error()
	} else {
		status["database"] = "ok"
	}

	if CmsDB != nil {
		if err := CmsDB.Ping(ctx); err != nil {
			status["pool"] = err.Error()
		} else {
			status["pool"] = "ok"
		}
	}

	if RedisClient != nil {
		if err := RedisClient.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}

// ErrNoPool is returned by helpers that need the raw postgres pool.
var ErrNoPool = errors.New("raw postgres pool not configured")

func CloseDB() {
	if CmsDB != nil {
		CmsDB.Close()
		log.Println("✅ Database connection closed (pgx)")
	}

	if CmsGorm != nil {
		sqlDB, _ := CmsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
