// Package auth provides authentication handlers for Fiber.
package auth

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhid/portfolio-backend/config"
	"github.com/abhid/portfolio-backend/model"
	"github.com/abhid/portfolio-backend/store"
)

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BootstrapAdmin creates the users file with the single configured admin
// account on the first-ever run. Later runs leave existing accounts alone.
func BootstrapAdmin(st *store.Store, cfg *config.Config, logger *zap.Logger) error {
	users, err := st.LoadUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	if cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Warn("admin account uses the default password, set ADMIN_PASSWORD",
			zap.String("username", cfg.AdminUsername))
	}

	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return st.SaveUsers([]model.User{{Username: cfg.AdminUsername, Password: hash}})
}
