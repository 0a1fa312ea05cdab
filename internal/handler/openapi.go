package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds index.html, openapi.html and openapi.json. Paths are
// relative to the working directory of the process.
const StaticDir = "static"

// OpenAPIHandler serves the landing page and the OpenAPI UI.
type OpenAPIHandler struct {
	Handler
	staticDir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:   NewHandler(s),
		staticDir: StaticDir,
	}
}

// ServeOpenAPIUI serves static/openapi.html, which loads openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return h.serveHTML(c, "openapi.html")
}

// ServeIndex serves the landing page at /.
func (h *OpenAPIHandler) ServeIndex(c echo.Context) error {
	return h.serveHTML(c, "index.html")
}

func (h *OpenAPIHandler) serveHTML(c echo.Context, name string) error {
	page, err := os.ReadFile(filepath.Join(h.staticDir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
