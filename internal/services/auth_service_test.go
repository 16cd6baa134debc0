package services

import (
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		Accounts:  repositories.AccountRepo{DB: db},
		JWTSecret: []byte("test-secret"),
	}
	return svc, mock, func() { db.Close() }
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'sita@example.com'"})

	_, err := svc.Register(RegisterInput{
		Name:     "Sita",
		Email:    "sita@example.com",
		Mobile:   "9800000001",
		Password: "secret123",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestRegister_OperatorNeedsOperatorName(t *testing.T) {
	svc, _, done := newAuthService(t)
	defer done()

	_, err := svc.Register(RegisterInput{
		Name:     "Greenline",
		Email:    "ops@example.com",
		Mobile:   "9841000000",
		Password: "secret123",
		Role:     "operator",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegister_DefaultsToPassenger(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(11, 1))

	account, err := svc.Register(RegisterInput{
		Name:     "Sita",
		Email:    "Sita@Example.com ",
		Mobile:   "9800000001",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Role != domain.RolePassenger {
		t.Fatalf("role = %q, want passenger", account.Role)
	}
	if account.Email != "sita@example.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
	if account.ID != 11 {
		t.Fatalf("id = %d, want 11", account.ID)
	}
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "mobile", "password_hash", "role", "operator_name"}).
		AddRow(3, "Sita", "sita@example.com", "9800000001", string(hash), "passenger", "")
	mock.ExpectQuery("SELECT id, name, email").WillReturnRows(rows)

	_, _, err := svc.Login("sita@example.com", "wrong-password")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmailSameMessage(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	mock.ExpectQuery("SELECT id, name, email").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "mobile", "password_hash", "role", "operator_name"}))

	_, _, err := svc.Login("nobody@example.com", "whatever")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogin_TokenCarriesIdentity(t *testing.T) {
	svc, mock, done := newAuthService(t)
	defer done()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "mobile", "password_hash", "role", "operator_name"}).
		AddRow(2, "Greenline", "ops@example.com", "9841000000", string(hash), "operator", "Greenline Travels")
	mock.ExpectQuery("SELECT id, name, email").WillReturnRows(rows)

	token, account, err := svc.Login("ops@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.OperatorName != "Greenline Travels" {
		t.Fatalf("operator name lost: %q", account.OperatorName)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["role"] != "operator" {
		t.Fatalf("role claim = %v, want operator", claims["role"])
	}
	if int64(claims["user_id"].(float64)) != 2 {
		t.Fatalf("user_id claim = %v, want 2", claims["user_id"])
	}
}
