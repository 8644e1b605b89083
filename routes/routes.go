package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/session"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Guest, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, sessions)

	// Public catalog + guest cart
	SetupPublicRoutes(r, db, sessions)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db)
}
