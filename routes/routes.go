package routes

import (
	"github.com/alinaharnat/healthy-eating-tracking-system/controllers"
	"github.com/alinaharnat/healthy-eating-tracking-system/middlewares"
	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"
	"github.com/alinaharnat/healthy-eating-tracking-system/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers onto a gin
// engine. Role checks happen here, before any core operation runs.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	mealRepo := repository.NewMealRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	recRepo := repository.NewRecommendationRepository(db)

	hub := services.NewRealtimeHub()

	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	mealSvc := services.NewMealService(mealRepo, productRepo)
	measurementSvc := services.NewMeasurementService(measurementRepo)
	analyticsSvc := services.NewAnalyticsService(mealRepo, userRepo)
	activitySvc := services.NewActivityService(measurementRepo)
	recSvc := services.NewRecommendationService(mealRepo, measurementRepo, userRepo, recRepo)
	adminSvc := services.NewAdminService(db, userRepo, measurementRepo)

	authCtrl := controllers.NewAuthController(authSvc, userSvc)
	userCtrl := controllers.NewUserController(userSvc)
	productCtrl := controllers.NewProductController(productSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	iotCtrl := controllers.NewIoTController(measurementSvc, hub)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc, activitySvc)
	recCtrl := controllers.NewRecommendationController(recSvc, hub)
	adminCtrl := controllers.NewAdminController(adminSvc, userSvc)
	rtCtrl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(db), authCtrl.Me)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userCtrl.GetProfile)
			users.PATCH("/me", userCtrl.UpdateProfile)
			users.GET("/patients",
				middlewares.RequireRoles(models.RoleDietitian),
				userCtrl.ListPatients)
		}

		products := protected.Group("/products")
		{
			products.GET("", productCtrl.Search)
			products.GET("/:id", productCtrl.Get)
			products.POST("",
				middlewares.RequireRoles(models.RoleDietitian, models.RoleAdmin),
				productCtrl.Create)
			products.PUT("/:id",
				middlewares.RequireRoles(models.RoleDietitian, models.RoleAdmin),
				productCtrl.Update)
			products.DELETE("/:id",
				middlewares.RequireRoles(models.RoleDietitian, models.RoleAdmin),
				productCtrl.Delete)
		}

		meals := protected.Group("/meals")
		{
			meals.POST("", mealCtrl.Create)
			meals.GET("", mealCtrl.List)
			meals.GET("/by-date", mealCtrl.ByDate)
			meals.POST("/:id/products", mealCtrl.AddProduct)
			meals.DELETE("/:id/products", mealCtrl.RemoveProduct)
			meals.DELETE("/:id", mealCtrl.Delete)
		}

		iot := protected.Group("/iot")
		{
			iot.POST("/measurements", iotCtrl.Ingest)
			iot.GET("/measurements/latest", iotCtrl.Latest)
			iot.DELETE("/measurements/:id", iotCtrl.Delete)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/daily-summary", analyticsCtrl.GetDailySummary)
			analytics.GET("/period", analyticsCtrl.GetPeriodAnalytics)
			analytics.GET("/activity", analyticsCtrl.GetActivitySummary)
		}

		recs := protected.Group("/recommendations")
		{
			recs.GET("", recCtrl.ListMine)
			recs.POST("/generate", recCtrl.Generate)
			recs.POST("",
				middlewares.RequireRoles(models.RoleDietitian),
				recCtrl.Create)
			recs.DELETE("/:id",
				middlewares.RequireRoles(models.RoleDietitian, models.RoleAdmin),
				recCtrl.Delete)
		}

		admin := protected.Group("/admin")
		admin.Use(middlewares.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/users", adminCtrl.ListUsers)
			admin.PATCH("/users/:id/role", adminCtrl.ChangeRole)
			admin.PATCH("/users/:id/block", adminCtrl.BlockUser)
			admin.PATCH("/users/:id/unblock", adminCtrl.UnblockUser)
			admin.DELETE("/users/:id", adminCtrl.DeleteUser)
			admin.GET("/users/:id/activity", adminCtrl.FullActivity)
			admin.PUT("/products/:id", productCtrl.Update)
			admin.DELETE("/products/:id", productCtrl.Delete)
			admin.GET("/statistics", adminCtrl.Statistics)
			admin.GET("/export", adminCtrl.Export)
			admin.POST("/import", adminCtrl.Import)
		}

		protected.GET("/realtime/ws", rtCtrl.EventsWS)
	}

	return r
}
