package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/config"
	"github.com/BiniyamTG/Injera-Beyond/controllers"
	"github.com/BiniyamTG/Injera-Beyond/database"
	"github.com/BiniyamTG/Injera-Beyond/middlewares"
	"github.com/BiniyamTG/Injera-Beyond/services"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

// SetupRouter wires services, controllers and middleware into the gin engine.
// Reads are public; writes, favorites and the user listing go through the auth
// middleware.
func SetupRouter(cfg *config.Config, db *database.DB, uploader *utils.S3Uploader, mailer *utils.Mailer) *gin.Engine {
	auth := services.NewAuthService(db, []byte(cfg.JWTSecret), mailer)
	catalog := services.NewCatalogService(db)

	foodCtrl := controllers.NewFoodController(services.NewFoodService(db), uploader)
	drinkCtrl := controllers.NewDrinkController(services.NewDrinkService(db), uploader)
	userCtrl := controllers.NewUserController(auth)
	favCtrl := controllers.NewFavoritesController(services.NewFavoritesService(db, catalog))
	recCtrl := controllers.NewRecommendationController(services.NewRecommendationService(db))

	r := gin.Default()
	r.Use(cors.Default())

	authRequired := middlewares.AuthMiddleware(auth)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API running"})
	})

	foods := r.Group("/foods")
	{
		foods.GET("", foodCtrl.List)
		foods.GET("/random", foodCtrl.Random)
		foods.GET("/quiz", foodCtrl.Quiz)
		foods.GET("/popular", foodCtrl.Popular)
		foods.GET("/:id", foodCtrl.Get)
		foods.GET("/:id/share", foodCtrl.Share)
		foods.POST("", authRequired, foodCtrl.Create)
		foods.PUT("/:id", authRequired, foodCtrl.Update)
		foods.DELETE("/:id", authRequired, foodCtrl.Delete)
		foods.POST("/:id/rate", authRequired, foodCtrl.Rate)
		foods.POST("/:id/photo", authRequired, foodCtrl.UploadPhoto)
	}

	drinks := r.Group("/drinks")
	{
		drinks.GET("", drinkCtrl.List)
		drinks.GET("/random", drinkCtrl.Random)
		drinks.GET("/popular", drinkCtrl.Popular)
		drinks.GET("/:id", drinkCtrl.Get)
		drinks.GET("/:id/share", drinkCtrl.Share)
		drinks.POST("", authRequired, drinkCtrl.Create)
		drinks.PUT("/:id", authRequired, drinkCtrl.Update)
		drinks.DELETE("/:id", authRequired, drinkCtrl.Delete)
		drinks.POST("/:id/rate", authRequired, drinkCtrl.Rate)
		drinks.POST("/:id/photo", authRequired, drinkCtrl.UploadPhoto)
	}

	users := r.Group("/users")
	{
		users.POST("", userCtrl.Register)
		users.POST("/login", userCtrl.Login)
		users.GET("", authRequired, userCtrl.List)
	}

	r.POST("/favorites/:itemId", authRequired, favCtrl.AddFavorite)
	r.GET("/favorites", authRequired, favCtrl.ListFavorites)
	r.POST("/tried/:itemId", authRequired, favCtrl.AddTried)
	r.GET("/tried", authRequired, favCtrl.ListTried)

	rec := r.Group("/recommendation")
	{
		rec.GET("/random", recCtrl.Random)
		rec.GET("/by-region/:region", recCtrl.ByRegion)
		rec.GET("/daily", recCtrl.Daily)
		rec.GET("/nearby", recCtrl.Nearby)
	}

	return r
}
