package models

// User represents the user model in the database
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Bills      []Bill     `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Categories []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
}
