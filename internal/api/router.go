package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, repos *repository.Repositories, jwtManager *auth.JWTManager, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	validator := validation.New()

	// Handlers
	authHandler := NewAuthHandler(services, validator, cfg, log)
	blogHandler := NewBlogHandler(services, validator, cfg, log)
	tagHandler := NewTagHandler(services, validator, log)
	contactHandler := NewContactHandler(services, validator, cfg, log)
	newsletterHandler := NewNewsletterHandler(services, validator, cfg, log)
	siteHandler := NewSiteHandler(services, validator, log)

	optional := authOptional(jwtManager)
	required := authRequired(jwtManager)
	admin := adminRequired()

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))

	// API v1
	v1 := router.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/profile", required, authHandler.Profile)

		blogs := v1.Group("/blogs")
		{
			blogs.GET("", optional, blogHandler.List)
			blogs.GET("/featured", blogHandler.Featured)
			blogs.GET("/:slug", optional, blogHandler.GetBySlug)
			blogs.POST("", required, admin, blogHandler.Create)

			byID := blogs.Group("/id")
			{
				byID.GET("/:id", optional, blogHandler.GetByID)
				byID.PUT("/:id", required, admin, blogHandler.Update)
				byID.DELETE("/:id", required, admin, blogHandler.Delete)
				byID.GET("/:id/comments", optional, blogHandler.Comments)
				byID.POST("/:id/comments", blogHandler.AddComment)
				byID.PUT("/:id/comments/:commentID", required, admin, blogHandler.ApproveComment)
			}
		}

		v1.GET("/tags", tagHandler.List)
		v1.POST("/tags", required, admin, tagHandler.Create)

		contact := v1.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)
			contact.GET("", required, admin, contactHandler.List)
			contact.PUT("/:id", required, admin, contactHandler.UpdateStatus)
			contact.DELETE("/:id", required, admin, contactHandler.Delete)
		}

		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("", newsletterHandler.Subscribe)
			newsletter.DELETE("", newsletterHandler.Unsubscribe)
			newsletter.GET("", required, admin, newsletterHandler.List)
		}

		features := v1.Group("/features")
		{
			features.GET("", optional, siteHandler.ListFeatures)
			features.POST("", required, admin, siteHandler.CreateFeature)
			features.PUT("/:id", required, admin, siteHandler.UpdateFeature)
			features.DELETE("/:id", required, admin, siteHandler.DeleteFeature)
		}

		testimonials := v1.Group("/testimonials")
		{
			testimonials.GET("", optional, siteHandler.ListTestimonials)
			testimonials.POST("", required, admin, siteHandler.CreateTestimonial)
			testimonials.PUT("/:id", required, admin, siteHandler.UpdateTestimonial)
			testimonials.DELETE("/:id", required, admin, siteHandler.DeleteTestimonial)
		}

		menu := v1.Group("/menu")
		{
			menu.GET("", optional, siteHandler.Menu)
			menu.POST("", required, admin, siteHandler.CreateMenuItem)
			menu.PUT("/:id", required, admin, siteHandler.UpdateMenuItem)
			menu.DELETE("/:id", required, admin, siteHandler.DeleteMenuItem)
		}

		v1.GET("/users", required, admin, authHandler.ListUsers)
		v1.POST("/users", required, admin, authHandler.CreateUser)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "marketing-cms-api",
	})
}

// metricsHandler returns content entity counts
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		blogCount, _ := repos.Blog.Count(ctx, models.BlogFilter{})
		tagCount, _ := repos.Tag.Count(ctx)
		contactCount, _ := repos.Contact.Count(ctx, models.ContactFilter{})
		subscriberCount, _ := repos.Newsletter.Count(ctx, models.NewsletterFilter{})
		userCount, _ := repos.User.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"content": gin.H{
				"blogs":       blogCount,
				"tags":        tagCount,
				"contacts":    contactCount,
				"subscribers": subscriberCount,
				"users":       userCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
