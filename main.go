package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edushare/config"
	"edushare/handler"
	"edushare/middleware"
	"edushare/repository"
	"edushare/services"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(deps *appDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, deps.userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, deps.userService)
			})
		}

		notes := public.Group("/notes")
		notes.Use(middleware.OptionalAuthMiddleware())
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, deps.notesService)
			})
			notes.GET("/search", func(c *gin.Context) {
				handler.SearchNotesHandler(c, deps.notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, deps.notesService)
			})
			notes.GET("/:id/stats", func(c *gin.Context) {
				handler.GetNoteStatsHandler(c, deps.ratingsService)
			})
		}

		categories := public.Group("/categories")
		{
			categories.GET("", func(c *gin.Context) {
				handler.ListCategoriesHandler(c, deps.categoryService)
			})
			categories.GET("/:id", func(c *gin.Context) {
				handler.GetCategoryHandler(c, deps.categoryService)
			})
		}

		public.GET("/stats/dashboard", deps.statsHandler.GetDashboard)
		public.GET("/stats/system", handler.GetSystemStats)
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetUserProfileHandler(c, deps.userService)
			})
			user.GET("/reputation", func(c *gin.Context) {
				handler.GetReputationHandler(c, deps.reputationService)
			})
			user.GET("/stats", deps.statsHandler.GetUploaderStats)
			user.POST("/logout", handler.LogoutHandler)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/mine", func(c *gin.Context) {
				handler.MyNotesHandler(c, deps.notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, deps.notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, deps.notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, deps.notesService)
			})
			notes.POST("/:id/rate", func(c *gin.Context) {
				handler.RateNoteHandler(c, deps.ratingsService)
			})
		}

		protected.POST("/categories", func(c *gin.Context) {
			handler.CreateCategoryHandler(c, deps.categoryService)
		})
		protected.PUT("/categories/:id", func(c *gin.Context) {
			handler.UpdateCategoryHandler(c, deps.categoryService)
		})
		protected.DELETE("/categories/:id", func(c *gin.Context) {
			handler.DeleteCategoryHandler(c, deps.categoryService)
		})
	}

	return router
}

type appDeps struct {
	userService       *usecase.UserService
	notesService      *usecase.NotesService
	ratingsService    *usecase.RatingsService
	reputationService *usecase.ReputationService
	categoryService   *usecase.CategoryService
	statsHandler      *handler.StatsHandler
}

func buildDeps(dbConfig config.DatabaseConfig, cacheConfig config.CacheConfig) *appDeps {
	userRepo := repository.GetUserRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	ratingsRepo := repository.GetRatingsRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	reputationRepo := repository.GetReputationRepo(utils.MongoClient)

	var statsCache *services.NoteStatsCache
	cache, err := services.NewNoteStatsCache(cacheConfig.RedisURL, cacheConfig.NoteStatsTTL)
	if err != nil {
		log.Printf("Note stats cache disabled: %v", err)
	} else {
		statsCache = cache
	}

	if blacklist, err := services.NewTokenBlacklist(cacheConfig.RedisURL); err != nil {
		log.Printf("Token blacklist disabled: %v", err)
	} else {
		services.TokenBlacklist = blacklist
	}

	reputationService := &usecase.ReputationService{
		UserRepo:       userRepo,
		ReputationRepo: reputationRepo,
	}
	ratingsService := &usecase.RatingsService{
		Client:          utils.MongoClient,
		RatingsRepo:     ratingsRepo,
		NotesRepo:       notesRepo,
		UserRepo:        userRepo,
		Reputation:      reputationService,
		StatsCache:      statsCache,
		UseTransactions: dbConfig.UseTransactions,
	}
	notesService := &usecase.NotesService{
		Client:          utils.MongoClient,
		NotesRepo:       notesRepo,
		RatingsRepo:     ratingsRepo,
		UserRepo:        userRepo,
		Reputation:      reputationService,
		UseTransactions: dbConfig.UseTransactions,
	}

	return &appDeps{
		userService:       &usecase.UserService{UserRepo: userRepo},
		notesService:      notesService,
		ratingsService:    ratingsService,
		reputationService: reputationService,
		categoryService: &usecase.CategoryService{
			CategoriesRepo: categoriesRepo,
			UserRepo:       userRepo,
			Notes:          notesService,
		},
		statsHandler: handler.NewStatsHandler(userRepo, notesRepo, ratingsRepo, categoriesRepo, reputationRepo),
	}
}

func main() {
	dbConfig := config.LoadDatabaseConfig()
	cacheConfig := config.LoadCacheConfig()

	utils.InitMongoClient(utils.MongoOptions{
		URI:             dbConfig.URI,
		MaxPoolSize:     dbConfig.MaxPoolSize,
		MinPoolSize:     dbConfig.MinPoolSize,
		MaxConnIdleTime: dbConfig.MaxConnIdleTime,
		RetryWrites:     dbConfig.RetryWrites,
	})

	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Fatalf("Failed to setup indexes: %v", err)
	}

	deps := buildDeps(dbConfig, cacheConfig)
	router := setupRouter(deps)

	port := utils.GetEnvAsString("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := utils.MongoClient.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}
	log.Println("Server shutdown complete")
}
