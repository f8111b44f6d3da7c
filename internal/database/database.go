package database

import (
	"fmt"

	"newvisas-cms/internal/models"
	"newvisas-cms/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Info("database connected and migrated")
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Continent{},
		&models.Country{},
		&models.NewsCategory{},
		&models.NewsArticle{},
		&models.Program{},
		&models.CaseStudy{},
		&models.Event{},
		&models.TeamMember{},
		&models.PropertyListing{},
		&models.LeadAssessment{},
		&models.Advertisement{},
		&models.FriendLink{},
	)
}

// EnsureAdmin creates a default back-office account when the admin table
// is empty so a fresh deployment is reachable. The password must be
// changed after first login.
func EnsureAdmin(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if username == "" || password == "" {
		logrus.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping bootstrap admin")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := models.AdminUser{Username: username, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logrus.WithField("username", username).Warn("created bootstrap admin account")
	return nil
}

// SeedContinents inserts the continent lookup rows used by country and
// listing forms.
func SeedContinents(db *gorm.DB) error {
	continents := []models.Continent{
		{Name: "亚洲", SortOrder: 1},
		{Name: "欧洲", SortOrder: 2},
		{Name: "北美洲", SortOrder: 3},
		{Name: "南美洲", SortOrder: 4},
		{Name: "大洋洲", SortOrder: 5},
		{Name: "非洲", SortOrder: 6},
	}

	for _, continent := range continents {
		if err := db.FirstOrCreate(&continent, models.Continent{Name: continent.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed continent %s: %w", continent.Name, err)
		}
	}
	return nil
}
