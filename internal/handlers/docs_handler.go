package handlers

import (
	"github.com/go-openapi/runtime/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// DocsHandler serves the API documentation.
type DocsHandler struct {
	openAPI []byte
	redoc   fiber.Handler
}

// NewDocsHandler creates a DocsHandler rendering the OpenAPI document with Redoc under the given title.
func NewDocsHandler(openAPI []byte, title string) *DocsHandler {
	redoc := middleware.Redoc(middleware.RedocOpts{
		Path:    "docs",
		SpecURL: "/openapi.yaml",
		Title:   title,
	}, nil)
	return &DocsHandler{
		openAPI: openAPI,
		redoc:   adaptor.HTTPHandler(redoc),
	}
}

// RegisterRoutes registers the root redirect and documentation routes.
func (h *DocsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/docs", h.redoc)
	router.Get("/openapi.yaml", h.HandleSpec)
}

// HandleRoot sends visitors of the bare host to the documentation page.
func (h *DocsHandler) HandleRoot(c *fiber.Ctx) error {
	return c.Redirect("/docs", fiber.StatusTemporaryRedirect)
}

// HandleSpec returns the raw OpenAPI document.
func (h *DocsHandler) HandleSpec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(h.openAPI)
}
