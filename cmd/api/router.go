package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devnetwork-backend/internal/shared/middleware"
	"devnetwork-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupUserRoutes(api, c)
		setupProfileRoutes(api, c)
		setupPostRoutes(api, c)
	}

	return router
}

func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	api.POST("/users", c.UserHandler.Register)
	api.POST("/auth", c.UserHandler.Login)
	api.GET("/auth", auth, c.UserHandler.GetMe)
}

func setupProfileRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	prof := api.Group("/profile")
	{
		prof.GET("", c.ProfileHandler.ListProfiles)
		prof.GET("/me", auth, c.ProfileHandler.GetOwnProfile)
		prof.GET("/user/:user_id", c.ProfileHandler.GetProfileByUserID)
		prof.POST("", auth, c.ProfileHandler.UpsertProfile)
		prof.DELETE("", auth, c.ProfileHandler.DeleteAccount)

		prof.PUT("/experience", auth, c.ProfileHandler.AddExperience)
		prof.DELETE("/experience/:exp_id", auth, c.ProfileHandler.RemoveExperience)
		prof.PUT("/education", auth, c.ProfileHandler.AddEducation)
		prof.DELETE("/education/:edu_id", auth, c.ProfileHandler.RemoveEducation)

		prof.GET("/github/:username", c.ProfileHandler.GetGithubRepos)
	}
}

func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	posts := api.Group("/posts")
	posts.Use(auth)
	{
		posts.POST("", c.PostHandler.CreatePost)
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/:id", c.PostHandler.GetPost)
		posts.DELETE("/:id", c.PostHandler.DeletePost)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["cache"] = err.Error()
		}

		ctx.JSON(status, health)
	}
}
