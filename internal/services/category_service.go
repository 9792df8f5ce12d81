package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "billtrack/internal/errors"
	"billtrack/internal/models"
)

// defaultCategories is the starter set created for every new user. Colors
// come from the standard palette.
var defaultCategories = []models.Category{
	{Name: "Utilities", Color: "#4a90e2"},
	{Name: "Rent & Mortgage", Color: "#f5a623"},
	{Name: "Subscriptions", Color: "#9b59b6"},
	{Name: "Insurance", Color: "#2ecc71"},
	{Name: "Other", Color: "#e74c3c"},
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Names are unique per user,
// compared case-insensitively.
func (s *categoryService) CreateCategory(userID, name, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	if color == "" {
		color = models.DefaultCategoryColor
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves all categories for a user.
func (s *categoryService) GetUserCategories(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// DeleteCategory deletes a category. Bills referencing it are detached
// rather than deleted.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bill{}).
			Where("category_id = ? AND user_id = ?", categoryID, userID).
			Update("category_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// CreateDefaults seeds the starter categories for a new user. Existing
// names are left untouched.
func (s *categoryService) CreateDefaults(userID string) error {
	for _, c := range defaultCategories {
		category := models.Category{
			UserID: userID,
			Name:   c.Name,
			Color:  c.Color,
		}
		if err := s.db.Create(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
