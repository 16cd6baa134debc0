package repositories

import (
	"testing"

	"busbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAccountGetByID_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "mobile", "password_hash", "role", "operator_name"}).
		AddRow(2, "Greenline", "ops@example.com", "9841000000", "hash", "operator", "Greenline Travels")
	mock.ExpectQuery("SELECT id, name, email").WithArgs(int64(2)).WillReturnRows(rows)

	repo := AccountRepo{DB: db}
	account, err := repo.GetByID(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Role != domain.RoleOperator {
		t.Fatalf("role = %q, want operator", account.Role)
	}
	if account.OperatorName != "Greenline Travels" {
		t.Fatalf("operator name = %q", account.OperatorName)
	}
}

func TestAccountGetByID_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "mobile", "password_hash", "role", "operator_name"}))

	repo := AccountRepo{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
