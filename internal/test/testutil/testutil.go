// Package testutil provides in-memory stores and fixtures for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory sqlite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// NewTestStore returns a gorm store over NewTestDB.
func NewTestStore(t *testing.T) *repository.GormStore {
	t.Helper()
	return repository.NewGormStore(NewTestDB(t), nil)
}

// NewResident returns a resident with every required field filled.
func NewResident(id string) *models.Resident {
	return &models.Resident{
		ID:               models.FlexString(id),
		Firstname:        "Juan",
		Lastname:         "Dela Cruz",
		Birthday:         "1990-05-14",
		Gender:           "Male",
		Age:              "35",
		Address:          "12 Rizal St",
		Email:            "juan@example.com",
		Pnumber:          "09171234567",
		CivilStatus:      "Single",
		Nationality:      "Filipino",
		Religion:         "Catholic",
		HouseNumber:      "12",
		Purok:            "Purok 1",
		YearsOfResidency: "10",
		Voter:            "Yes",
		EmploymentStatus: "Employed",
		Occupation:       "Teacher",
		MonthlyIncome:    "25000",
		EducationLevel:   "College",
		Senior:           "No",
		Pwd:              "No",
	}
}

// ResidentJSON returns the JSON form of NewResident(id).
func ResidentJSON(id string) map[string]interface{} {
	r := NewResident(id)
	body := make(map[string]interface{}, len(models.ResidentFields))
	for _, f := range models.ResidentFields {
		body[f.Name] = f.Value(r).String()
	}
	return body
}
