package handlers

import (
	"database/sql"
	"net/http"

	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	DB        *sql.DB
	JWTSecret []byte
}

func (h AuthHandler) service(c *gin.Context) services.AuthService {
	return services.AuthService{
		Accounts:  repositories.AccountRepo{DB: h.DB},
		JWTSecret: h.JWTSecret,
		RequestID: middleware.GetRequestID(c),
	}
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	OperatorName string `json:"operatorName"`
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	account, err := h.service(c).Register(services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Password:     req.Password,
		Role:         req.Role,
		OperatorName: req.OperatorName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user": gin.H{
			"id":           account.ID,
			"name":         account.Name,
			"email":        account.Email,
			"mobile":       account.Mobile,
			"role":         account.Role,
			"operatorName": account.OperatorName,
		},
	})
}

// GET /api/auth/me — the account behind the presented token.
func (h AuthHandler) Me(c *gin.Context) {
	caller := middleware.GetCaller(c)

	account, err := repositories.AccountRepo{DB: h.DB}.GetByID(caller.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           account.ID,
			"name":         account.Name,
			"email":        account.Email,
			"mobile":       account.Mobile,
			"role":         account.Role,
			"operatorName": account.OperatorName,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, account, err := h.service(c).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           account.ID,
			"name":         account.Name,
			"email":        account.Email,
			"mobile":       account.Mobile,
			"role":         account.Role,
			"operatorName": account.OperatorName,
		},
	})
}
