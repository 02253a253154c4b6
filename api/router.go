// Package api contains all endpoints available
package api

import (
	"fmt"
	"recipe-api/db"
	"recipe-api/middleware"
	"recipe-api/pkg/security"
	"recipe-api/storage"
	"time"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Hasher *security.Hasher
	Store  storage.Storage
}

// NewRouter wires the full application: database, storage backend and
// all routes. Use New directly when the collaborators already exist
// (tests do).
func NewRouter() (*API, error) {
	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	s, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage backend, %w", err)
	}

	return New(d, s), nil
}

// New builds the router around explicit collaborators instead of any
// global registry, so every handler reaches the database and storage
// through the API value it hangs off.
func New(d *gorm.DB, s storage.Storage) *API {
	a := &API{
		DB:     d,
		Hasher: security.NewHasher(),
		Store:  s,
	}

	router := gin.New()
	a.Router = router

	origins := viper.GetStringSlice("host.allowed_origins")
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	// Unsupported verbs on known paths answer 405 instead of 404
	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	if viper.GetString("storage.type") == "local" {
		router.Static("/media", viper.GetString("storage.media_root"))
	}

	auth := middleware.NewTokenMiddleware(d)
	jsonBody := middleware.BodySizeLimiter(1 << 20)
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// GET /api/health-check	-> Used to check if the server is alive
		main.GET("/health-check", a.HealthCheck)
	}

	user := main.Group("/user", jsonBody)
	{
		// POST /api/user/create	-> Registers a new user
		user.POST("/create", a.UserRegister)

		// POST /api/user/token		-> Issues an auth token for valid credentials
		user.POST("/token", a.UserToken)

		// GET /api/user/me		-> Returns the authenticated user's profile
		user.GET("/me", auth, a.UserMe)

		// PATCH /api/user/me		-> Partially updates name and/or password
		user.PATCH("/me", auth, a.UserMeUpdate)
	}

	recipe := main.Group("/recipe", auth)
	{
		recipes := recipe.Group("/recipes")
		{
			// GET /api/recipe/recipes			-> Lists the caller's recipes, filterable by tag/ingredient IDs
			recipes.GET("", jsonBody, a.RecipeList)

			// POST /api/recipe/recipes			-> Creates a recipe, get-or-creating any referenced labels
			recipes.POST("", jsonBody, a.RecipeCreate)

			// GET /api/recipe/recipes/:id			-> Returns a single recipe
			recipes.GET("/:id", jsonBody, a.RecipeFetch)

			// PUT /api/recipe/recipes/:id			-> Full update
			recipes.PUT("/:id", jsonBody, a.RecipeUpdate)

			// PATCH /api/recipe/recipes/:id		-> Partial update
			recipes.PATCH("/:id", jsonBody, a.RecipeUpdate)

			// DELETE /api/recipe/recipes/:id		-> Deletes a recipe and its stored image
			recipes.DELETE("/:id", jsonBody, a.RecipeDelete)

			// POST /api/recipe/recipes/:id/upload-image	-> Attaches an image to a recipe
			recipes.POST("/:id/upload-image", middleware.BodySizeLimiter(maxUploadSize), a.RecipeUploadImage)
		}

		tags := recipe.Group("/tags", jsonBody)
		{
			// GET /api/recipe/tags		-> Lists the caller's tags
			tags.GET("", a.TagList)

			// GET /api/recipe/tags/:id	-> Returns a single tag
			tags.GET("/:id", a.TagFetch)

			// PATCH /api/recipe/tags/:id	-> Renames a tag
			tags.PATCH("/:id", a.TagUpdate)

			// DELETE /api/recipe/tags/:id	-> Deletes a tag and unlinks it from recipes
			tags.DELETE("/:id", a.TagDelete)
		}

		ingredients := recipe.Group("/ingredients", jsonBody)
		{
			// Same surface as tags
			ingredients.GET("", a.IngredientList)
			ingredients.GET("/:id", a.IngredientFetch)
			ingredients.PATCH("/:id", a.IngredientUpdate)
			ingredients.DELETE("/:id", a.IngredientDelete)
		}
	}

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
