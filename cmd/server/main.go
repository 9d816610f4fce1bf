package main

import (
	"html/template"
	"log"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/router"
	"inkwell/internal/storage/postgres"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Initialize Database
	store, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Page cache for the front page
	pageCache := cache.New(64)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inkwell_session", sessionStore))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates(cfg.TemplatesDir)

	// Static Assets
	r.Static("/static", cfg.StaticDir)

	router.RegisterRoutes(r, store, pageCache)

	log.Printf("Inkwell server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := templatesDir + "/layouts/base.html"

	assemble := func(view string) []string {
		return []string{layout, templatesDir + "/views/" + view}
	}

	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	views := []string{
		"index.html",
		"post.html",
		"make-post.html",
		"register.html",
		"login.html",
		"about.html",
		"contact.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
