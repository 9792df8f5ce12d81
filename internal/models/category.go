package models

// DefaultCategoryColor is the palette value assigned when no color is given.
const DefaultCategoryColor = "#4a90e2"

// Category represents a bill category. Names are unique per user,
// compared case-insensitively.
type Category struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Color  string `json:"color"`

	Bills []Bill `gorm:"foreignKey:CategoryID" json:"bills,omitempty"`
}
