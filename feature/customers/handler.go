package customers

import (
	_ "embed"
	"errors"
	"strconv"

	"customer-importer/core/logger"
	"customer-importer/feature/customers/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed web/index.html
var indexPage []byte

// Handler handles HTTP requests for customers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the customer routes and the browser view.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)

	group := app.Group("/customers")
	group.Get("/", h.HandleListCustomers)
	group.Get("/:id", h.HandleGetCustomer)
}

// HandleIndex serves the customer table page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexPage)
}

// HandleListCustomers returns every stored customer.
// @Summary List Customers
// @Description List every imported customer with full name, email and country.
// @Tags customers
// @Produce json
// @Success 200 {array} models.CustomerSummary "Customers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers [get]
func (h *Handler) HandleListCustomers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.ListCustomers(c.Context())
	if err != nil {
		l.Error("Failed to list customers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(list)
}

// HandleGetCustomer returns a single customer.
// @Summary Get Customer
// @Description Get the full detail of one imported customer.
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.CustomerDetail "Customer Detail"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /customers/{id} [get]
func (h *Handler) HandleGetCustomer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return notFound(c)
	}

	detail, err := h.service.GetCustomer(c.Context(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		l.Error("Failed to load customer", zap.Uint64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(detail)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Customer not found",
	})
}
