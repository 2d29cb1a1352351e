package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"stayfinder-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "stayfinder_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase creates a demo host and a handful of listings so a fresh
// install has something to browse. Idempotent: skipped when listings exist.
func SeedDatabase() {
	var hostCount int64
	DB.Model(&models.Profile{}).Count(&hostCount)

	var host models.Profile
	if hostCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash demo host password: %v", err)
			return
		}
		host = models.Profile{
			Email:        "host@stayfinder.local",
			PasswordHash: string(hash),
			FirstName:    "Sarah",
			LastName:     "Chen",
		}
		if err := DB.Create(&host).Error; err != nil {
			log.Printf("warning: failed to create demo host: %v", err)
			return
		}
		log.Println("Demo host seeded")
	} else {
		if err := DB.First(&host).Error; err != nil {
			return
		}
	}

	var listingCount int64
	DB.Model(&models.Listing{}).Count(&listingCount)
	if listingCount > 0 {
		log.Println("Listings already seeded")
		return
	}

	listings := []models.Listing{
		{
			HostID:        host.ID,
			Title:         "Cozy Villa with Garden",
			Description:   "A quiet villa near the beach with a private garden.",
			PropertyType:  "Villa",
			City:          "Miami",
			State:         "Florida",
			Address:       "12 Ocean Drive",
			PricePerNight: 200,
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     2,
			Amenities:     models.StringArray([]string{"WiFi", "Parking", "Beach Access"}),
			Images:        models.StringArray([]string{}),
			IsActive:      true,
		},
		{
			HostID:        host.ID,
			Title:         "Downtown Loft",
			Description:   "Industrial loft in the heart of the city.",
			PropertyType:  "Apartment",
			City:          "Chicago",
			State:         "Illinois",
			Address:       "450 W Madison St",
			PricePerNight: 150,
			MaxGuests:     2,
			Bedrooms:      1,
			Bathrooms:     1,
			Amenities:     models.StringArray([]string{"WiFi", "City Views"}),
			Images:        models.StringArray([]string{}),
			IsActive:      true,
		},
		{
			HostID:        host.ID,
			Title:         "Mountain Cabin Retreat",
			Description:   "Rustic cabin with fireplace and mountain views.",
			PropertyType:  "Cabin",
			City:          "Denver",
			State:         "Colorado",
			Address:       "8 Pine Trail",
			PricePerNight: 175,
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     1,
			Amenities:     models.StringArray([]string{"Fireplace", "Mountain Views", "Parking"}),
			Images:        models.StringArray([]string{}),
			IsActive:      true,
		},
	}

	if err := DB.Create(&listings).Error; err != nil {
		log.Printf("warning: failed to seed listings: %v", err)
		return
	}
	log.Println("Listings seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Profile{},
		&models.Listing{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
