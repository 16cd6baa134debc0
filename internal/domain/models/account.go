package models

import (
	"strings"
	"time"

	"busbooking/internal/domain"
)

// Account is a registered user. Email is immutable and unique; OperatorName
// is set only for operator accounts.
type Account struct {
	ID           domain.ID
	Name         string
	Email        string
	Mobile       string
	PasswordHash string
	Role         domain.Role
	OperatorName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPassenger, NewOperator and NewAdmin are the only constructors; they keep
// the operator-name rule out of runtime branching at call sites.
func NewPassenger(name, email, mobile, passwordHash string) Account {
	return Account{
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		Mobile:       strings.TrimSpace(mobile),
		PasswordHash: passwordHash,
		Role:         domain.RolePassenger,
	}
}

func NewOperator(name, email, mobile, passwordHash, operatorName string) Account {
	a := NewPassenger(name, email, mobile, passwordHash)
	a.Role = domain.RoleOperator
	a.OperatorName = strings.TrimSpace(operatorName)
	return a
}

func NewAdmin(name, email, mobile, passwordHash string) Account {
	a := NewPassenger(name, email, mobile, passwordHash)
	a.Role = domain.RoleAdmin
	return a
}

// Validate enforces the structural account rules: required identity fields
// and operator name present exactly when the role is operator.
func (a Account) Validate() error {
	if a.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if len(a.Name) > 60 {
		return domain.ValidationError{Field: "name", Msg: "cannot be more than 60 characters"}
	}
	if a.Email == "" {
		return domain.ValidationError{Field: "email", Msg: "required"}
	}
	if a.Mobile == "" {
		return domain.ValidationError{Field: "mobile", Msg: "required"}
	}
	if a.PasswordHash == "" {
		return domain.ValidationError{Field: "password", Msg: "required"}
	}
	if !a.Role.Valid() {
		return domain.ValidationError{Field: "role", Msg: "must be passenger, operator or admin"}
	}
	if a.Role == domain.RoleOperator && a.OperatorName == "" {
		return domain.ValidationError{Field: "operatorName", Msg: "required for operator accounts"}
	}
	if a.Role != domain.RoleOperator && a.OperatorName != "" {
		return domain.ValidationError{Field: "operatorName", Msg: "only allowed for operator accounts"}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
