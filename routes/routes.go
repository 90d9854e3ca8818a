package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ayushfaujdar/oodio-solutions/controllers"
	"github.com/ayushfaujdar/oodio-solutions/middlewares"
)

// Deps carries the wired controllers into the router.
type Deps struct {
	Portfolio *controllers.PortfolioController
	Category  *controllers.CategoryController
	Contact   *controllers.ContactController
	Upload    *controllers.UploadController
	Admin     *controllers.AdminController

	CORSOrigins []string
	// UploadDir, when non-empty, is served statically under /uploads
	// (local disk staging backend).
	UploadDir string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	api := r.Group("/api")
	{
		// Public surface
		api.GET("/portfolio", deps.Portfolio.List)
		api.GET("/categories", deps.Category.List)
		api.POST("/contact", deps.Contact.Submit)
		api.POST("/admin/login", deps.Admin.Login)

		// Admin surface, token required
		admin := api.Group("")
		admin.Use(middlewares.AdminAuthMiddleware())
		{
			admin.POST("/portfolio", deps.Portfolio.Create)
			admin.PUT("/portfolio/:id", deps.Portfolio.Update)
			admin.DELETE("/portfolio/:id", deps.Portfolio.Delete)
			admin.POST("/categories", deps.Category.Create)
			admin.DELETE("/categories/:id", deps.Category.Delete)
			admin.POST("/upload", deps.Upload.Upload)
			admin.GET("/admin/contacts", deps.Admin.ListContacts)
		}
	}

	return r
}
