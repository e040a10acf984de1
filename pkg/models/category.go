package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Category represents a user defined tag for classifying expenses.
type Category struct {
	DefaultModel
	Name  string
	Icon  string // Key into the icon set of the host app
	Color string // Hex RGB, e.g. "#FF9500"
}

// defaultCategories are created on first launch so that users can start
// recording expenses right away.
var defaultCategories = []Category{
	{Name: "Food", Icon: "fork.knife", Color: "#FF9500"},
	{Name: "Transport", Icon: "car.fill", Color: "#007AFF"},
	{Name: "Shopping", Icon: "cart.fill", Color: "#AF52DE"},
	{Name: "Entertainment", Icon: "gamecontroller.fill", Color: "#FF2D55"},
	{Name: "Bills", Icon: "doc.text.fill", Color: "#34C759"},
}

// BeforeSave trims whitespace from all strings
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	return nil
}

// Categories returns all categories, ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// SeedDefaultCategories creates the default categories when none exist yet.
// It does nothing on a database that already has categories.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if count > 0 {
		return nil
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)

	return db.Create(&categories).Error
}
