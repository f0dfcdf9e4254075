package routes

import (
	"net/http"
	"time"

	"github.com/abdulazeespr/HungryGo/config"
	"github.com/abdulazeespr/HungryGo/controllers"
	"github.com/abdulazeespr/HungryGo/middlewares"
	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/services"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	utils.RegisterValidators()

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RateLimit(100, 15*time.Minute))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.ErrorHandler(cfg.Env))

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	planCtl := controllers.NewMealPlanController(services.NewMealPlanService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	orderCtl := controllers.NewOrderController(services.NewOrderService(db))
	subCtl := controllers.NewSubscriptionController(services.NewSubscriptionService(db))
	payCtl := controllers.NewPaymentController(
		services.NewPaymentService(db, cfg.StripeSecretKey), cfg.StripeWebhookSecret)
	supportCtl := controllers.NewSupportController(services.NewSupportService(db))

	protect := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	admin := middlewares.RestrictTo(models.RoleAdmin)
	staff := middlewares.RestrictTo(models.RoleAdmin, models.RoleAgent)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", protect, authCtl.Me)
	}

	users := api.Group("/users", protect)
	{
		users.GET("/:id", userCtl.GetByID)
		users.PUT("/:id", userCtl.Update)
		users.GET("", admin, userCtl.List)
		users.DELETE("/:id", admin, userCtl.Delete)
	}

	plans := api.Group("/meal-plans")
	{
		plans.GET("", planCtl.List)
		plans.GET("/:id", planCtl.GetByID)
		plans.POST("", protect, admin, planCtl.Create)
		plans.PUT("/:id", protect, admin, planCtl.Update)
		plans.DELETE("/:id", protect, admin, planCtl.Delete)
	}

	meals := api.Group("/meals")
	{
		meals.GET("", mealCtl.List)
		meals.GET("/:id", mealCtl.GetByID)
		meals.POST("", protect, admin, mealCtl.Create)
		meals.PUT("/:id", protect, admin, mealCtl.Update)
		meals.DELETE("/:id", protect, admin, mealCtl.Delete)
	}

	orders := api.Group("/orders", protect)
	{
		orders.GET("", orderCtl.ListMine)
		orders.GET("/:id", orderCtl.GetByID)
		orders.POST("", orderCtl.Create)
		orders.PUT("/:id", orderCtl.Update)
		orders.PUT("/:id/cancel", orderCtl.Cancel)
		orders.GET("/admin/all", admin, orderCtl.ListAll)
	}

	subs := api.Group("/subscriptions", protect)
	{
		subs.GET("", subCtl.ListMine)
		subs.GET("/:id", subCtl.GetByID)
		subs.POST("", subCtl.Create)
		subs.PUT("/:id", subCtl.Update)
		subs.PUT("/:id/cancel", subCtl.Cancel)
		subs.PUT("/:id/pause", subCtl.Pause)
		subs.PUT("/:id/resume", subCtl.Resume)
		subs.GET("/admin/all", admin, subCtl.ListAll)
	}

	payments := api.Group("/payments")
	{
		// webhook stays outside auth; the body must reach the handler raw
		payments.POST("/webhook", payCtl.Webhook)

		authed := payments.Group("", protect)
		authed.POST("/create-intent", payCtl.CreateIntent)
		authed.GET("", payCtl.ListMine)
		authed.GET("/:id", payCtl.GetByID)
		authed.GET("/admin/all", admin, payCtl.ListAll)
	}

	support := api.Group("/support/tickets", protect)
	{
		support.POST("", supportCtl.Create)
		support.GET("", supportCtl.List)
		support.GET("/:id", supportCtl.GetByID)
		support.POST("/:id/responses", supportCtl.Respond)
		support.PUT("/:id/status", staff, supportCtl.UpdateStatus)
	}

	return r
}
