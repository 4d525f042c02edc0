// File: internal/site/handler.go
package site

import (
	"net/http"
	"path"

	"page_insights_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	indexFile       = "index.html"
	htmlContentType = "text/html; charset=utf-8"
)

// Handler serves the legal pages and the front-end assets.
type Handler struct {
	staticDir string
	fs        http.FileSystem
	logger    *zap.Logger
}

// NewHandler creates a new site handler rooted at cfg.StaticDir.
func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		staticDir: cfg.StaticDir,
		fs:        http.Dir(cfg.StaticDir),
		logger:    logger.Named("SiteHandler"),
	}
}

// RegisterRoutes sets up the page routes. Asset serving is attached separately
// through NoRoute so it never shadows an API path.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.index)
	router.GET("/privacy-policy", h.privacyPolicy)
	router.GET("/terms-of-service", h.termsOfService)
}

func (h *Handler) index(c *gin.Context) {
	if !h.serveFile(c, "/") {
		h.logger.Warn("Index file missing", zap.String("dir", h.staticDir))
		c.Status(http.StatusNotFound)
	}
}

func (h *Handler) privacyPolicy(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, []byte(privacyPolicyHTML))
}

func (h *Handler) termsOfService(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, []byte(termsOfServiceHTML))
}

// Assets serves files under the static directory for unmatched GET and HEAD
// requests. Anything else falls through as a 404.
func (h *Handler) Assets(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}
	if !h.serveFile(c, c.Request.URL.Path) {
		c.Status(http.StatusNotFound)
	}
}

// serveFile writes the file at urlPath from the static directory and reports
// whether it existed. Directories are served only through their index file.
func (h *Handler) serveFile(c *gin.Context, urlPath string) bool {
	if h.staticDir == "" || !h.exists(urlPath) {
		return false
	}
	c.FileFromFS(urlPath, h.fs)
	return true
}

func (h *Handler) exists(name string) bool {
	f, err := h.fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.IsDir() {
		return h.exists(path.Join(name, indexFile))
	}
	return info.Mode().IsRegular()
}
