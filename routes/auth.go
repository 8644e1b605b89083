package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/auth"
	"github.com/hammadi-dev/cartly-api/session"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db, sessions))
		authGroup.POST("/guest", auth.CreateGuestSession())
	}
}
