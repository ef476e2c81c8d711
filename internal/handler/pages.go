package handler

import (
	"fmt"
	"net/http"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/static"
	"github.com/labstack/echo/v4"
)

// StatusResponse is the fixed body of GET /status.
type StatusResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	AvailablePages []string `json:"available_pages"`
}

var statusResponse = StatusResponse{
	Status:  "running",
	Message: "E-commerce API server is working!",
	AvailablePages: []string{
		"/ - Main Dashboard (with forms)",
		"/test - Simple test page",
		"/api - API info",
		"/users - Users API endpoint",
		"/products - Products API endpoint",
		"/orders - Orders API endpoint",
	},
}

// PagesHandler serves the static dashboard pages and the informational
// endpoints. None of them touch the database.
type PagesHandler struct {
	Handler
}

func NewPagesHandler(s *server.Server) *PagesHandler {
	return &PagesHandler{
		Handler: NewHandler(s),
	}
}

func (h *PagesHandler) Dashboard(c echo.Context) error {
	return h.serve(c, "index.html")
}

func (h *PagesHandler) TestPage(c echo.Context) error {
	return h.serve(c, "test.html")
}

func (h *PagesHandler) APIInfo(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the E-commerce API!")
}

func (h *PagesHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse)
}

func (h *PagesHandler) serve(c echo.Context, name string) error {
	page, err := static.Files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read page %s: %w", name, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}
