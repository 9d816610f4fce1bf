package router

import (
	"inkwell/internal/cache"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/storage"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the blog's routes onto the engine.
func RegisterRoutes(r *gin.Engine, store storage.Storage, pageCache *cache.Cache) {
	r.Use(middleware.LoadUser(store))

	authHandler := handlers.NewAuthHandler(store)
	postHandler := handlers.NewPostHandler(store, pageCache)
	pageHandler := handlers.NewPageHandler()

	// Public Routes
	r.GET("/", postHandler.List)
	r.GET("/about", pageHandler.About)
	r.GET("/contact", pageHandler.Contact)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Reading a post and commenting require a login
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/post/:id", postHandler.Show)
		authorized.POST("/post/:id", postHandler.AddComment)
	}

	// Authoring is for the admin account only
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/new-post", postHandler.ShowCreate)
		admin.POST("/new-post", postHandler.Create)
		admin.GET("/edit-post/:id", postHandler.ShowEdit)
		admin.POST("/edit-post/:id", postHandler.Update)
		admin.GET("/delete/:id", postHandler.Delete)
	}
}
