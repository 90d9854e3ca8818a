package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

// MemoryStorage is an in-process Storage used by tests and local hacking.
// It mirrors the semantics of the persistent adapter: server-assigned ids
// and timestamps, newest-first item/submission listings, ascending category
// listings and a unique category name constraint.
type MemoryStorage struct {
	mu          sync.Mutex
	nextID      uint
	items       []models.PortfolioItem
	categories  []models.Category
	submissions []models.ContactSubmission
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{nextID: 1}
}

func (s *MemoryStorage) assignID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemoryStorage) GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.PortfolioItem{}, s.items...)
	sortItemsNewestFirst(out)
	return out, nil
}

func (s *MemoryStorage) GetPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.PortfolioItem{}
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	sortItemsNewestFirst(out)
	return out, nil
}

func (s *MemoryStorage) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.assignID()
	item.CreatedAt = time.Now()
	s.items = append(s.items, *item)
	return nil
}

func (s *MemoryStorage) UpdatePortfolioItem(ctx context.Context, id string, updates models.PortfolioItemUpdate) (*models.PortfolioItem, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != key {
			continue
		}
		if updates.Title != nil {
			s.items[i].Title = *updates.Title
		}
		if updates.Description != nil {
			s.items[i].Description = *updates.Description
		}
		if updates.Category != nil {
			s.items[i].Category = *updates.Category
		}
		if updates.Image != nil {
			s.items[i].Image = *updates.Image
		}
		item := s.items[i]
		return &item, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) DeletePortfolioItem(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Category{}, s.categories...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStorage) CreateCategory(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return ErrDuplicate
		}
	}
	category.ID = s.assignID()
	category.CreatedAt = time.Now()
	s.categories = append(s.categories, *category)
	return nil
}

func (s *MemoryStorage) DeleteCategory(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == key {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CreateContactSubmission(ctx context.Context, submission *models.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	submission.ID = s.assignID()
	submission.CreatedAt = time.Now()
	s.submissions = append(s.submissions, *submission)
	return nil
}

func (s *MemoryStorage) GetContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.ContactSubmission{}, s.submissions...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// sortItemsNewestFirst orders by creation time descending, insertion order
// breaking ties so back-to-back creates stay deterministic.
func sortItemsNewestFirst(items []models.PortfolioItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
