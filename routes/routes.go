package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SairamGundeboina019/fitness-tracker/config"
	"github.com/SairamGundeboina019/fitness-tracker/controllers"
	"github.com/SairamGundeboina019/fitness-tracker/middlewares"
	"github.com/SairamGundeboina019/fitness-tracker/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authCtl := controllers.NewAuthController(services.NewAuthService(db), cfg.JWTSecret, cfg.TokenTTL)
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db))

	requireAuth := middlewares.AuthMiddleware(db, cfg.JWTSecret)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", requireAuth, authCtl.Me)
	}

	meals := api.Group("/meals")
	meals.Use(requireAuth)
	{
		meals.POST("", mealCtl.Create)
		meals.GET("", mealCtl.List)
		meals.GET("/weekly-summary", mealCtl.WeeklySummary)
		meals.PUT("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	workouts := api.Group("/workouts")
	workouts.Use(requireAuth)
	{
		workouts.POST("", workoutCtl.Create)
		workouts.GET("", workoutCtl.List)
		workouts.GET("/weekly-summary", workoutCtl.WeeklySummary)
		workouts.PUT("/:id", workoutCtl.Update)
		workouts.DELETE("/:id", workoutCtl.Delete)
	}

	return r
}
