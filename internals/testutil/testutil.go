// internals/testutil/testutil.go
//
// Bootstrap DB in-memory untuk test. Driver SQLite pure-Go supaya test
// repository/reconciler jalan tanpa server Postgres.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gModel "bimbelku_backend/internals/features/academics/groups/model"
	sModel "bimbelku_backend/internals/features/academics/students/model"
	adminModel "bimbelku_backend/internals/features/admins/auth/model"
	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
)

// NewTestDB membuka SQLite in-memory dan memigrasi seluruh tabel.
// Satu koneksi saja, karena tiap koneksi :memory: adalah DB terpisah.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite in-memory: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&adminModel.AdminModel{},
		&gModel.GroupModel{},
		&sModel.StudentModel{},
		&pModel.PaymentModel{},
		&eModel.ExpenseModel{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return db
}
