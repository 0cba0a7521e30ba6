package services

import (
	"testing"

	"github.com/Bapiggott/BigBoy-sub001/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A pooled :memory: DSN would give each connection its own empty
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
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
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedLocation(t *testing.T, db *gorm.DB) models.Location {
	t.Helper()
	location := models.Location{
		Name:         "BigBoy Downtown",
		AddressLine1: "100 Main St",
		City:         "Springfield",
		IsActive:     true,
	}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return location
}

// seedCatalog creates a burger ($10.00) with an "Extras" group holding
// bacon (+$2.00) and an unavailable truffle modifier, plus fries
// ($3.50) with no modifiers and an unavailable shake.
func seedCatalog(t *testing.T, db *gorm.DB) (burger, fries, shake models.MenuItem, bacon, truffle models.Modifier) {
	t.Helper()
	category := models.Category{Name: "Burgers", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	extras := models.ModifierGroup{
		Name: "Extras",
		Modifiers: []models.Modifier{
			{Name: "Extra Bacon", Price: 2.00, IsAvailable: true},
			{Name: "Truffle Aioli", Price: 1.50, IsAvailable: false},
		},
	}
	if err := db.Create(&extras).Error; err != nil {
		t.Fatalf("seed modifier group: %v", err)
	}
	bacon = extras.Modifiers[0]
	truffle = extras.Modifiers[1]

	burger = models.MenuItem{
		CategoryID:     category.ID,
		Name:           "Classic Big Burger",
		Price:          10.00,
		IsAvailable:    true,
		ModifierGroups: []models.ModifierGroup{extras},
	}
	fries = models.MenuItem{CategoryID: category.ID, Name: "Fries", Price: 3.50, IsAvailable: true}
	shake = models.MenuItem{CategoryID: category.ID, Name: "Shake", Price: 4.00, IsAvailable: false}
	for _, item := range []*models.MenuItem{&burger, &fries, &shake} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("seed menu item: %v", err)
		}
	}
	return burger, fries, shake, bacon, truffle
}

func seedUser(t *testing.T, db *gorm.DB, currentPoints, lifetimePoints int) models.User {
	t.Helper()
	user := models.User{
		Email:          "test@example.com",
		Name:           "Test User",
		CurrentPoints:  currentPoints,
		LifetimePoints: lifetimePoints,
		Tier:           models.TierBronze,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) models.User {
	t.Helper()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return user
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected %s error, got %v", code, err)
	}
	if e.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, e.Code, e.Message)
	}
}
