package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/session"
	"github.com/hammadi-dev/cartly-api/validators"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type LoginInput struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	SessionID string `json:"session_id"` // guest session whose cart gets merged
}

// POST /auth/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validators.ValidateEmail(input.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validators.ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.FullName != "" {
			if err := validators.ValidateString("full_name", input.FullName, 1, 100); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         models.RoleCustomer,
			FullName:     input.FullName,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user_id": user.ID, "email": user.Email})
	}
}

// POST /auth/login
//
// A guest session ID may be sent along; its cart is merged into the user's
// persistent cart. Merge problems never fail the login.
func LoginHandler(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		mergeStatus := MergeNone
		if input.SessionID != "" {
			mergeStatus = MergeGuestCart(db, sessions, input.SessionID, user.ID)
		}

		token, err := issueJWT(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"token":        token,
			"merge_status": string(mergeStatus),
			"user_id":      user.ID,
			"role":         user.Role,
		})
	}
}

// POST /auth/guest
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + generateRandomString(16)
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"expires_at": time.Now().Add(24 * time.Hour),
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

// issueJWT generates a signed token carrying identity and role membership.
func issueJWT(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
