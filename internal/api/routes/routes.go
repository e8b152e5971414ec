package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/typesense/typesense-go/v3/typesense"

	"github.com/amarupazila/app-local-info/internal/api/handlers"
	"github.com/amarupazila/app-local-info/internal/config"
	"github.com/amarupazila/app-local-info/internal/middleware"
	"github.com/amarupazila/app-local-info/internal/preferences"
	"github.com/amarupazila/app-local-info/internal/recordstore"
	"github.com/amarupazila/app-local-info/internal/search"
	"github.com/amarupazila/app-local-info/internal/services"
)

// Deps holds the constructed collaborators of the HTTP layer. Everything is
// wired in main and handed down; routes only attach handlers.
type Deps struct {
	TypesenseClient *typesense.Client
	Adapter         *recordstore.Adapter
	FeedService     *services.FeedService
	CategoryService *services.CategoryService
	SearchService   *search.Service
	Preferences     *preferences.Store
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	if cfg.TracingEnabled {
		r.Use(middleware.RequestTiming())
	}

	feedHandler := handlers.NewFeedHandler(deps.FeedService)
	recordHandler := handlers.NewRecordHandler(deps.Adapter, cfg.Collection)
	preferenceHandler := handlers.NewPreferenceHandler(deps.Preferences, deps.FeedService)
	categoryHandler := handlers.NewCategoryHandler(deps.CategoryService)
	searchHandler := handlers.NewSearchHandler(deps.SearchService, cfg.Collection)
	healthHandler := handlers.NewHealthHandler(deps.TypesenseClient, deps.FeedService)

	api := r.Group("/api/v1")
	{
		api.GET("/feed", feedHandler.GetFeed)
		api.POST("/feed/refresh", feedHandler.RefreshFeed)
		api.POST("/feed/refetch", feedHandler.RefetchFeed)

		api.POST("/records", recordHandler.CreateRecord)
		api.GET("/records/:id", recordHandler.GetRecord)
		api.PATCH("/records/:id", recordHandler.UpdateRecord)
		api.DELETE("/records/:id", recordHandler.DeleteRecord)

		api.GET("/preferences", preferenceHandler.GetPreferences)
		api.PUT("/preferences/algorithm-mix", preferenceHandler.PutAlgorithmMix)
		api.PUT("/preferences/:category", preferenceHandler.PutPreference)

		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/search", searchHandler.Search)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
