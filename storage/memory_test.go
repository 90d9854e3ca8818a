package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

func TestMemoryStorage_PortfolioItemLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	item := models.PortfolioItem{
		Title:       "Demo",
		Description: "Demo item",
		Category:    "video",
		Image:       "https://host/img.jpg",
	}
	require.NoError(t, store.CreatePortfolioItem(ctx, &item))
	require.NotZero(t, item.ID, "create must assign an identifier")
	require.False(t, item.CreatedAt.IsZero(), "create must assign a timestamp")

	items, err := store.GetPortfolioItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, item.ID, items[0].ID)

	require.NoError(t, store.DeletePortfolioItem(ctx, "1"))

	items, err = store.GetPortfolioItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMemoryStorage_GetByCategoryFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for _, seed := range []models.PortfolioItem{
		{Title: "First video", Description: "d", Category: "video", Image: "i"},
		{Title: "A design", Description: "d", Category: "design", Image: "i"},
		{Title: "Second video", Description: "d", Category: "video", Image: "i"},
	} {
		item := seed
		require.NoError(t, store.CreatePortfolioItem(ctx, &item))
		time.Sleep(time.Millisecond)
	}

	items, err := store.GetPortfolioItemsByCategory(ctx, "video")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.Equal(t, "video", item.Category)
	}
	// newest first
	require.Equal(t, "Second video", items[0].Title)
	require.Equal(t, "First video", items[1].Title)

	items, err = store.GetPortfolioItemsByCategory(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, items, "no matches must be an empty slice, not an error")
}

func TestMemoryStorage_UpdatePortfolioItem(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	item := models.PortfolioItem{Title: "Old", Description: "d", Category: "video", Image: "i"}
	require.NoError(t, store.CreatePortfolioItem(ctx, &item))

	newTitle := "New"
	updated, err := store.UpdatePortfolioItem(ctx, "1", models.PortfolioItemUpdate{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "d", updated.Description, "unsupplied fields keep their value")

	_, err = store.UpdatePortfolioItem(ctx, "999", models.PortfolioItemUpdate{Title: &newTitle})
	require.ErrorIs(t, err, ErrNotFound)

	// update never creates
	items, _ := store.GetPortfolioItems(ctx)
	require.Len(t, items, 1)
}

func TestMemoryStorage_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	require.ErrorIs(t, store.DeletePortfolioItem(ctx, "42"), ErrNotFound)
	require.ErrorIs(t, store.DeleteCategory(ctx, "42"), ErrNotFound)
	require.ErrorIs(t, store.DeletePortfolioItem(ctx, "not-a-key"), ErrNotFound)
}

func TestMemoryStorage_CategoryUniqueNameAndOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	first := models.Category{Name: "video", DisplayName: "Video Editing", Color: "cyan"}
	require.NoError(t, store.CreateCategory(ctx, &first))
	time.Sleep(time.Millisecond)

	second := models.Category{Name: "design", DisplayName: "Design", Color: "blue"}
	require.NoError(t, store.CreateCategory(ctx, &second))

	dup := models.Category{Name: "video", DisplayName: "Video Again", Color: "red"}
	require.ErrorIs(t, store.CreateCategory(ctx, &dup), ErrDuplicate)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// ascending creation order
	require.Equal(t, "video", categories[0].Name)
	require.Equal(t, "design", categories[1].Name)
}

func TestMemoryStorage_ContactSubmissionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for _, name := range []string{"first", "second", "third"} {
		sub := models.ContactSubmission{Name: name, Email: name + "@example.com", Message: "hi"}
		require.NoError(t, store.CreateContactSubmission(ctx, &sub))
		time.Sleep(time.Millisecond)
	}

	subs, err := store.GetContactSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	require.Equal(t, "third", subs[0].Name)
	require.Equal(t, "first", subs[2].Name)
}
