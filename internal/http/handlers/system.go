package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SystemHandler struct {
	DB *sql.DB
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check — connectivity diagnostic with a short ping deadline.
func (h SystemHandler) DBCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		RespondError(c, http.StatusInternalServerError, "db_unreachable", "database ping failed")
		return
	}

	var count int
	if err := h.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "db_query_failed", "failed to query database")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "users_in_db": count})
}

// POST /api/seed — idempotent demo accounts for local development.
func (h SystemHandler) Seed(c *gin.Context) {
	repo := repositories.AccountRepo{DB: h.DB}
	results := gin.H{}

	seeds := []struct {
		key      string
		email    string
		password string
		build    func(hash string) models.Account
	}{
		{
			key:      "operator",
			email:    "operator@example.com",
			password: "operator123",
			build: func(hash string) models.Account {
				return models.NewOperator("Greenline Travels", "operator@example.com", "9841000000", hash, "Greenline Travels")
			},
		},
		{
			key:      "passenger",
			email:    "passenger@example.com",
			password: "passenger123",
			build: func(hash string) models.Account {
				return models.NewPassenger("Demo Passenger", "passenger@example.com", "9800000000", hash)
			},
		},
	}

	for _, seed := range seeds {
		if _, err := repo.GetByEmail(seed.email); err == nil {
			results[seed.key] = "already exists"
			continue
		} else if !domain.IsNotFound(err) {
			RespondError(c, http.StatusInternalServerError, "seed_failed", "failed to check existing account")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "seed_failed", "failed to hash password")
			return
		}
		if _, err := repo.Create(seed.build(string(hash))); err != nil {
			RespondError(c, http.StatusInternalServerError, "seed_failed", "failed to create account")
			return
		}
		results[seed.key] = "created"
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}
