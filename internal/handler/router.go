package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/config"
	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
	"github.com/canya/backend/internal/store"
)

// NewRouter builds the services and wires every route. It fails if the auth
// service cannot be constructed (missing signing secret, bad TTL).
func NewRouter(cfg config.Config, fs *store.FileStore, gen service.Generator) (*gin.Engine, error) {
	authSvc, err := service.NewAuthService(fs, cfg.Auth)
	if err != nil {
		return nil, err
	}

	userSvc := service.NewUserService(fs)
	links := service.NewLinkDirectory(fs)
	services := service.NewServiceDirectory(fs)
	members := service.NewMemberDirectory(fs)
	chatSvc := service.NewChatService(gen)

	r := gin.Default()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))
	}

	r.GET("/ping", Ping)

	api := r.Group("/api")

	auth := NewAuthHandler(authSvc)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/verify", auth.Verify)

	admin := api.Group("", AuthMiddleware(authSvc), RequireRole(model.RoleAdmin))
	users := NewUsersHandler(userSvc)
	admin.GET("/users", users.List)
	admin.POST("/users", users.Create)
	admin.PUT("/users/:id", users.Update)
	admin.DELETE("/users/:id", users.Delete)
	registerDirectory(admin, "/links", NewDirectoryHandler(links))
	registerDirectory(admin, "/services", NewDirectoryHandler(services))
	registerDirectory(admin, "/members", NewDirectoryHandler(members))

	public := NewPublicHandler(links, services, members)
	api.GET("/public/links", public.Links)
	api.GET("/public/services", public.Services)
	api.GET("/public/members", public.Members)

	api.POST("/chatbot", NewChatHandler(chatSvc).Chat)
	api.GET("/flags/config", NewFlagsHandler(cfg.Flags).Config)

	registerPages(r, cfg.Server.PublicDir)

	return r, nil
}

func registerDirectory[T any](g *gin.RouterGroup, path string, h *DirectoryHandler[T]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// registerPages serves the site's HTML pages and static assets from the
// public directory. Skipped entirely when the directory is absent, as in
// API-only deployments and tests.
func registerPages(r *gin.Engine, publicDir string) {
	if publicDir == "" {
		return
	}
	if info, err := os.Stat(publicDir); err != nil || !info.IsDir() {
		return
	}

	pages := map[string]string{
		"/":         "index.html",
		"/services": filepath.Join("pages", "services.html"),
		"/about":    filepath.Join("pages", "about.html"),
		"/login":    filepath.Join("pages", "login.html"),
		"/admin":    filepath.Join("pages", "admin.html"),
		"/profile":  filepath.Join("pages", "profile.html"),
	}
	for route, page := range pages {
		file := filepath.Join(publicDir, page)
		r.GET(route, func(c *gin.Context) {
			c.File(file)
		})
	}

	r.NoRoute(func(c *gin.Context) {
		// Static assets first, then the 404 page.
		requested := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		if data, err := os.ReadFile(filepath.Join(publicDir, "404.html")); err == nil {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", data)
			return
		}
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	})
}
