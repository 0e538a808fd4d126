package service

import (
	"errors"
	"strings"

	"github.com/centavo/centavo-backend/internal/domain"
)

// categoryPalette supplies display colors for categories created without
// an explicit one
var categoryPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// CategoryService handles category management. Categories are shared
// reference data, not owned by a user.
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput holds the input for creating a category
type CreateCategoryInput struct {
	Name        string
	Type        domain.CategoryType
	Color       string
	Description *string
}

// CreateCategory creates a category with a unique name
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if input.Type != domain.CategoryTypeIncome && input.Type != domain.CategoryTypeExpense {
		return nil, domain.ErrInvalidCategoryType
	}
	description, err := trimOptional(input.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.GetByName(name)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryAlreadyExists
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = defaultColor(name)
	}

	return s.categoryRepo.Create(&domain.Category{
		Name:        name,
		Type:        input.Type,
		Color:       color,
		Description: description,
	})
}

// GetCategory retrieves a category by id
func (s *CategoryService) GetCategory(id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// GetCategories retrieves all categories
func (s *CategoryService) GetCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// UpdateCategory renames or recolors a category, keeping names unique
func (s *CategoryService) UpdateCategory(id int32, name, color string, description *string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	desc, err := trimOptional(description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.GetByName(name)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrCategoryAlreadyExists
	}

	color = strings.TrimSpace(color)
	if color == "" {
		color = defaultColor(name)
	}

	return s.categoryRepo.Update(id, name, color, desc)
}

// DeleteCategory removes a category that has no transactions
func (s *CategoryService) DeleteCategory(id int32) error {
	inUse, err := s.categoryRepo.HasTransactions(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}

func defaultColor(name string) string {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return categoryPalette[sum%len(categoryPalette)]
}
