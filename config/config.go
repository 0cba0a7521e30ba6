package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Policy holds the pricing/loyalty constants for the order workflow.
// Built once at startup; tests construct their own.
var Policy services.Policy

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "bigboy_orders_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "bigboy.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.ModifierGroup{},
		&models.Modifier{},
		&models.Location{},
		&models.LocationHours{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemModifier{},
		&models.Reward{},
		&models.UserReward{},
		&models.FavoriteItem{},
		&models.Address{},
		&models.Preferences{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	Policy = loadPolicy()

	log.Println("Database connected and migrated")
}

func loadPolicy() services.Policy {
	p := services.DefaultPolicy()
	p.TaxRate = getEnvFloat("TAX_RATE", p.TaxRate)
	p.PointsPerDollar = getEnvInt("POINTS_PER_DOLLAR", p.PointsPerDollar)
	p.BasePrepMinutes = getEnvInt("BASE_PREP_MINUTES", p.BasePrepMinutes)
	p.PrepMinutesPerItem = getEnvInt("PREP_MINUTES_PER_ITEM", p.PrepMinutesPerItem)
	p.PrepMinutesCap = getEnvInt("PREP_MINUTES_CAP", p.PrepMinutesCap)
	p.RejectUnknownModifiers = getEnv("REJECT_UNKNOWN_MODIFIERS", "false") == "true"
	p.ClampBalanceOnCancel = getEnv("CLAMP_BALANCE_ON_CANCEL", "false") == "true"
	return p
}
