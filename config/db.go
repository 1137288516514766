package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel-management/models"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMySQLConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	cfg := newMySQLConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)

	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if cfg.DBName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case "parseTime":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return "", fmt.Errorf("invalid parseTime %q: %w", value, err)
			}
			cfg.ParseTime = b
		case "loc":
			loc, err := time.LoadLocation(value)
			if err != nil {
				return "", fmt.Errorf("invalid loc %q: %w", value, err)
			}
			cfg.Loc = loc
		default:
			cfg.Params[key] = value
		}
	}

	return cfg.FormatDSN(), nil
}

// ResolveDSN prefers MYSQL_URL/DATABASE_URL (mysql:// URL or raw driver DSN)
// and falls back to the individual DB_* settings.
func ResolveDSN(db DBConfig) (string, error) {
	if db.URL != "" {
		if strings.HasPrefix(db.URL, "mysql://") {
			return mysqlDSNFromURL(db.URL)
		}
		if _, err := mysql.ParseDSN(db.URL); err != nil {
			return "", fmt.Errorf("invalid database dsn: %w", err)
		}
		return db.URL, nil
	}

	cfg := newMySQLConfig()
	cfg.User = db.User
	cfg.Passwd = db.Password
	cfg.Addr = net.JoinHostPort(db.Host, db.Port)
	cfg.DBName = db.Name
	return cfg.FormatDSN(), nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// NewGormLogger is shared with the service tests so SQL output looks the same everywhere.
func NewGormLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// ConnectDatabase opens the pool. The returned handle is shared by every
// service; connections are checked out per statement or transaction.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	dsn, err := ResolveDSN(cfg.DB)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(cfg.DB.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get raw sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}
	if cfg.SeedRooms {
		SeedRooms(db)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Guest{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
	)
}

// SeedRooms inserts a starter set of rooms into an empty Room table.
func SeedRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		log.Printf("warning: failed to count rooms: %v", err)
		return
	}
	if count > 0 {
		log.Println("Rooms already seeded")
		return
	}

	number := func(s string) *string { return &s }
	rooms := []models.Room{
		{RoomNumber: number("101"), RoomType: "Standard", PricePerNight: 1200, AvailabilityStatus: models.RoomStatusAvailable.String()},
		{RoomNumber: number("102"), RoomType: "Standard", PricePerNight: 1200, AvailabilityStatus: models.RoomStatusAvailable.String()},
		{RoomNumber: number("201"), RoomType: "Superior", PricePerNight: 1800, AvailabilityStatus: models.RoomStatusAvailable.String()},
		{RoomNumber: number("301"), RoomType: "Deluxe", PricePerNight: 2500, AvailabilityStatus: models.RoomStatusAvailable.String()},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}
