package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/service"
)

// SetupRoutes wires the dashboard's REST-style surface. Every route lives
// under /api; calling a route with an unsupported method yields 405 before
// any handler (and therefore any upstream call) runs.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	trainerService service.TrainerService,
	clientService service.ClientService,
	workoutService service.WorkoutService,
	mealPlanService service.MealPlanService,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(trainerService, clientService)
	clientHandler := NewClientHandler(clientService)
	workoutHandler := NewWorkoutHandler(workoutService)
	mealPlanHandler := NewMealPlanHandler(mealPlanService)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	router.Use(RequestID())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/login", authHandler.Login)
		apiGroup.POST("/signup", authHandler.Signup)

		trainers := apiGroup.Group("/trainers")
		{
			trainers.GET("/getAll", trainerHandler.GetAll)
			trainers.GET("/getById", trainerHandler.GetByID)
			trainers.GET("/getByEmail", trainerHandler.GetByEmail)
			trainers.PUT("/update", trainerHandler.Update)
			trainers.DELETE("/delete", trainerHandler.Delete)
		}

		clients := apiGroup.Group("/clients")
		{
			clients.GET("/getAll", clientHandler.GetAll)
			clients.GET("/getById", clientHandler.GetByID)
			clients.GET("/getByTrainer", clientHandler.GetByTrainer)
			clients.POST("/create", clientHandler.Create)
			clients.PUT("/update", clientHandler.Update)
			clients.DELETE("/delete", clientHandler.Delete)
			clients.PUT("/assignTrainer", clientHandler.AssignTrainer)
			clients.PUT("/removeTrainer", clientHandler.RemoveTrainer)
		}

		workouts := apiGroup.Group("/workouts")
		{
			workouts.GET("/getAll", workoutHandler.GetAll)
			workouts.GET("/getById", workoutHandler.GetByID)
			workouts.POST("/create", workoutHandler.Create)
			workouts.POST("/update", workoutHandler.Update)
			workouts.PUT("/update", workoutHandler.Update)
			workouts.POST("/delete", workoutHandler.Delete)
			workouts.DELETE("/delete", workoutHandler.Delete)
		}

		mealPlans := apiGroup.Group("/mealPlans")
		{
			mealPlans.GET("/getAll", mealPlanHandler.GetAll)
			mealPlans.GET("/getById", mealPlanHandler.GetByID)
			mealPlans.POST("/create", mealPlanHandler.Create)
			mealPlans.POST("/update", mealPlanHandler.Update)
			mealPlans.PUT("/update", mealPlanHandler.Update)
			mealPlans.POST("/delete", mealPlanHandler.Delete)
			mealPlans.DELETE("/delete", mealPlanHandler.Delete)
		}
	}
}
