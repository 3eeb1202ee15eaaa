package postgres

import (
	"context"
	"testing"
	"time"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.ServiceCategory {
	t.Helper()

	category := &entity.ServiceCategory{ID: uuid.New(), Name: name}
	require.NoError(t, db.Table("service_categories").Create(map[string]any{
		"id":         category.ID,
		"name":       category.Name,
		"created_at": time.Now(),
	}).Error)

	return category
}

func TestServiceRepository_CreateAndFindWithCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Cartes de visite")
	printerID := uuid.New()

	service := &entity.PrinterService{
		PrinterID:     printerID,
		CategoryID:    category.ID,
		Name:          "Cartes premium 350g",
		PriceMin:      10000,
		PriceMax:      25000,
		EstimatedDays: 3,
	}
	require.NoError(t, repo.CreateService(ctx, service))

	found, err := repo.FindServiceByID(ctx, service.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cartes premium 350g", found.Name)
	assert.Equal(t, "Cartes de visite", found.CategoryName)
	assert.Equal(t, category.ID, found.CategoryID)
}

func TestServiceRepository_UpdateAndDeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	printerID := uuid.New()
	service := &entity.PrinterService{PrinterID: printerID, Name: "Flyers A5"}
	require.NoError(t, repo.CreateService(ctx, service))

	// A different shop can neither update nor delete it.
	hijacked := *service
	hijacked.PrinterID = uuid.New()
	hijacked.Name = "Autre"
	assert.ErrorIs(t, repo.UpdateService(ctx, &hijacked), repository.ErrServiceNotFound)
	assert.ErrorIs(t, repo.DeleteService(ctx, service.ID, uuid.New()), repository.ErrServiceNotFound)

	service.Name = "Flyers A5 recto-verso"
	require.NoError(t, repo.UpdateService(ctx, service))

	found, err := repo.FindServiceByID(ctx, service.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flyers A5 recto-verso", found.Name)

	require.NoError(t, repo.DeleteService(ctx, service.ID, printerID))
	_, err = repo.FindServiceByID(ctx, service.ID)
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)
}

func TestServiceRepository_ListCategories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewServiceRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "Textile")
	seedCategory(t, db, "Affiches")

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// Alphabetical.
	assert.Equal(t, "Affiches", categories[0].Name)
	assert.Equal(t, "Textile", categories[1].Name)
}

func TestPromotionRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPromotionRepository(db)
	ctx := context.Background()

	printerID := uuid.New()
	promo := &entity.Promotion{
		PrinterID:          printerID,
		Title:              "-20% sur les flyers",
		DiscountPercentage: 20,
		StartDate:          time.Now().Add(-time.Hour),
		EndDate:            time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.CreatePromotion(ctx, promo))
	assert.True(t, promo.Active(time.Now()))

	promos, err := repo.FindPromotionsByPrinter(ctx, printerID)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "-20% sur les flyers", promos[0].Title)

	assert.ErrorIs(t, repo.DeletePromotion(ctx, promo.ID, uuid.New()), repository.ErrPromotionNotFound)
	require.NoError(t, repo.DeletePromotion(ctx, promo.ID, printerID))

	promos, err = repo.FindPromotionsByPrinter(ctx, printerID)
	require.NoError(t, err)
	assert.Empty(t, promos)
}
