package repositories

import (
	"database/sql"
	"errors"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type AccountRepo struct {
	DB *sql.DB
}

// Create inserts a new account. The unique key on email turns a duplicate
// registration into a ConflictError.
func (r AccountRepo) Create(a models.Account) (models.Account, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, email, mobile, password_hash, role, operator_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, a.Name, a.Email, a.Mobile, a.PasswordHash, string(a.Role), nullIfEmpty(a.OperatorName))
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.Account{}, domain.ConflictError{Resource: "account", Msg: "email already registered", Err: err}
		}
		return models.Account{}, err
	}
	id, _ := res.LastInsertId()
	a.ID = domain.ID(id)
	return a, nil
}

func (r AccountRepo) GetByEmail(email string) (models.Account, error) {
	return r.scanOne(`
		SELECT id, name, email, mobile, password_hash, role, COALESCE(operator_name, '')
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email)
}

func (r AccountRepo) GetByID(id domain.ID) (models.Account, error) {
	return r.scanOne(`
		SELECT id, name, email, mobile, password_hash, role, COALESCE(operator_name, '')
		FROM users
		WHERE id = ?
		LIMIT 1
	`, int64(id))
}

func (r AccountRepo) scanOne(query string, arg any) (models.Account, error) {
	var a models.Account
	var role string
	err := r.DB.QueryRow(query, arg).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Mobile,
		&a.PasswordHash,
		&role,
		&a.OperatorName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, domain.NotFoundError{Resource: "account", Err: err}
		}
		return models.Account{}, err
	}
	a.Role = domain.Role(role)
	return a, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
