package services

import (
	"fmt"
	"strings"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks. The rest of the
// system only consumes the {id, role} identity it puts into the token.
type AuthService struct {
	Accounts  repositories.AccountRepo
	JWTSecret []byte
	RequestID string
}

type RegisterInput struct {
	Name         string
	Email        string
	Mobile       string
	Password     string
	Role         string
	OperatorName string
}

func (s AuthService) Register(in RegisterInput) (models.Account, error) {
	if strings.TrimSpace(in.Password) == "" {
		return models.Account{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	role := domain.Role(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = domain.RolePassenger
	}

	var account models.Account
	switch role {
	case domain.RolePassenger:
		account = models.NewPassenger(in.Name, in.Email, in.Mobile, string(hash))
	case domain.RoleOperator:
		account = models.NewOperator(in.Name, in.Email, in.Mobile, string(hash), in.OperatorName)
	case domain.RoleAdmin:
		account = models.NewAdmin(in.Name, in.Email, in.Mobile, string(hash))
	default:
		return models.Account{}, domain.ValidationError{Field: "role", Msg: "must be passenger, operator or admin"}
	}

	if err := account.Validate(); err != nil {
		return models.Account{}, err
	}

	created, err := s.Accounts.Create(account)
	if err != nil {
		if domain.IsConflict(err) {
			return models.Account{}, err
		}
		return models.Account{}, domain.InternalError{Msg: "failed to save account", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("account_id=%d role=%s", created.ID, created.Role))
	return created, nil
}

// Login verifies credentials and issues a session token carrying {id, role}.
// Wrong email and wrong password produce the same message.
func (s AuthService) Login(email, password string) (string, models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", models.Account{}, domain.ValidationError{Msg: "email and password are required"}
	}

	account, err := s.Accounts.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.Account{}, domain.UnauthorizedError{Msg: "invalid email or password"}
		}
		return "", models.Account{}, domain.InternalError{Msg: "failed to query account", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", models.Account{}, domain.UnauthorizedError{Msg: "invalid email or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(account.ID),
		"role":    string(account.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", models.Account{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("account_id=%d", account.ID))
	return signed, account, nil
}
