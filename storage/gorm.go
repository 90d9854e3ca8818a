package storage

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

// GormStorage persists records in Postgres through GORM.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// parseID maps a path identifier onto the numeric surrogate key. Anything
// that is not a valid key cannot match a record, so it reports not-found
// rather than a client error.
func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(n), nil
}

func (s *GormStorage) GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	items := []models.PortfolioItem{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *GormStorage) GetPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	items := []models.PortfolioItem{}
	err := s.db.WithContext(ctx).Where("category = ?", category).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *GormStorage) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *GormStorage) UpdatePortfolioItem(ctx context.Context, id string, updates models.PortfolioItemUpdate) (*models.PortfolioItem, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var item models.PortfolioItem
	if err := s.db.WithContext(ctx).First(&item, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.Description != nil {
		item.Description = *updates.Description
	}
	if updates.Category != nil {
		item.Category = *updates.Category
	}
	if updates.Image != nil {
		item.Image = *updates.Image
	}

	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStorage) DeletePortfolioItem(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.PortfolioItem{}, key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error
	return categories, err
}

func (s *GormStorage) CreateCategory(ctx context.Context, category *models.Category) error {
	err := s.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (s *GormStorage) DeleteCategory(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&models.Category{}, key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) CreateContactSubmission(ctx context.Context, submission *models.ContactSubmission) error {
	return s.db.WithContext(ctx).Create(submission).Error
}

func (s *GormStorage) GetContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
