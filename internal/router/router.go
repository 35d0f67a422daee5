package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/windoze95/servicehub-api/internal/config"
	"github.com/windoze95/servicehub-api/internal/handlers"
	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/middleware"
	"github.com/windoze95/servicehub-api/internal/repository"
	"github.com/windoze95/servicehub-api/internal/service"
	"github.com/windoze95/servicehub-api/internal/upstream"
	"github.com/windoze95/servicehub-api/internal/ws"
)

const (
	limiterCleanupInterval = time.Minute
	limiterExpiration      = 5 * time.Minute
)

// SetupRouter sets up the Gin router. kv backs the weather search history.
func SetupRouter(ctx context.Context, cfg *config.Config, kv repository.KeyValueStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.EnvVars.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.EnvVars.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, logger.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{logger.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(middleware.Metrics())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpClient := &http.Client{Timeout: cfg.EnvVars.HTTPTimeout}
	rps := cfg.EnvVars.UpstreamRPS

	catalog := cfg.Services
	if catalog == nil {
		catalog = config.DefaultServiceCatalog()
	}
	catalogHandler := handlers.NewCatalogHandler(service.NewCatalogService(catalog))

	// Book search setup
	bookProvider := upstream.NewOpenLibraryProvider(cfg.EnvVars.BooksBaseURL, httpClient, rps)
	bookService := service.NewBookService(cfg, bookProvider)
	bookHandler := handlers.NewBookHandler(bookService)

	// Weather setup
	weatherProvider := upstream.NewOpenMeteoProvider(cfg.EnvVars.WeatherBaseURL, cfg.EnvVars.GeocodeBaseURL, httpClient, rps)
	history := repository.NewHistoryRepository(kv, cfg.EnvVars.HistoryKey, cfg.EnvVars.HistoryLimit)
	weatherHandler := handlers.NewWeatherHandler(service.NewWeatherService(cfg, weatherProvider, history))

	// Recipe setup
	recipeProvider := upstream.NewMealDBProvider(cfg.EnvVars.RecipeBaseURL, httpClient, rps)
	recipeHandler := handlers.NewRecipeHandler(service.NewRecipeService(cfg, recipeProvider))

	// Earthquake setup
	quakeProvider := upstream.NewUSGSProvider(cfg.EnvVars.QuakeBaseURL, httpClient, rps)
	earthquakeHandler := handlers.NewEarthquakeHandler(service.NewEarthquakeService(cfg, quakeProvider))

	api := r.Group("/v1")
	if cfg.EnvVars.ClientRPS > 0 {
		api.Use(middleware.RateLimitByIP(ctx, cfg.EnvVars.ClientRPS, limiterCleanupInterval, limiterExpiration))
	}
	{
		// Dashboard shell
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/legend", catalogHandler.GetLegend)

		// Book routes
		api.GET("/books/search", bookHandler.SearchBooks)

		// Weather routes
		api.GET("/weather", weatherHandler.GetWeather)
		api.GET("/weather/recent", weatherHandler.GetRecent)

		// Recipe routes
		api.GET("/recipes/search", recipeHandler.SearchRecipes)
		api.GET("/recipes/random", recipeHandler.GetRandomRecipe)
		api.GET("/recipes/category/:category", recipeHandler.ListByCategory)
		api.GET("/recipes/area/:area", recipeHandler.ListByArea)
		api.GET("/recipes/:recipe_id", recipeHandler.GetRecipe)

		// Earthquake routes
		api.GET("/earthquakes", earthquakeHandler.GetEarthquakes)
	}

	// WebSocket live book search
	hub := ws.NewHub()
	go hub.Run()
	liveSearchHandler := ws.NewLiveSearchHandler(hub, bookService, cfg.EnvVars.DebounceDelay, bookService.PageSize, cfg.EnvVars.AllowedOrigins)
	r.GET("/v1/ws/books", liveSearchHandler.HandleBookSearch)

	return r
}
