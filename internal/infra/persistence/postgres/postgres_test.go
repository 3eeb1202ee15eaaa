package postgres

import (
	"testing"

	"imprisio/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema so the
// repositories can be exercised against real SQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PrinterModel{},
		&model.CredentialModel{},
		&model.RefreshTokenModel{},
		&model.AddressModel{},
		&model.OrderModel{},
		&model.ServiceModel{},
		&model.CategoryModel{},
		&model.PromotionModel{},
	))

	return db
}
