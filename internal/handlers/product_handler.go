package handlers

import (
	"errors"
	"strconv"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

type listQuery struct {
	Skip  int `json:"skip" query:"skip" validate:"gte=0"`
	Limit int `json:"limit" query:"limit" validate:"gt=0"`
}

// HandleListProducts returns a page of products selected by the skip and limit query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	q := listQuery{Skip: 0, Limit: services.DefaultLimit}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "Invalid query parameters",
			"error":  err.Error(),
		})
	}
	if err := h.check(q); err != nil {
		return h.reject(c, err)
	}

	products, err := h.service.ListProducts(c.UserContext(), q.Skip, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(models.NewProductResponses(products))
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.reject(c, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(models.NewProductResponse(*product))
}

// HandleCreateProduct creates a new product and answers 201 with its assigned id.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return h.reject(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewProductResponse(*product))
}

// HandleUpdateProduct replaces every field of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.reject(c, err)
	}
	input, err := h.parseInput(c)
	if err != nil {
		return h.reject(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(models.NewProductResponse(*product))
}

// HandleDeleteProduct removes a product and confirms it by name.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return h.reject(c, err)
	}

	product, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(models.NewDeleteResponse(*product))
}

// errBadBody marks a body that could not be decoded at all.
type errBadBody struct{ err error }

func (e errBadBody) Error() string { return e.err.Error() }

func (h *ProductHandler) parseInput(c *fiber.Ctx) (models.ProductInput, error) {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return input, errBadBody{err: err}
	}
	return input, h.check(input)
}

func (h *ProductHandler) check(v any) error {
	return h.validate.Struct(v)
}

// reject answers 422 for input the handler refuses before touching the store.
func (h *ProductHandler) reject(c *fiber.Ctx, err error) error {
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		return validationFailed(c, fields)
	}
	var bad errBadBody
	if errors.As(err, &bad) {
		return invalidBody(c, bad.err)
	}
	return err
}

// storeError maps a missing product to 404 and lets everything else reach the error handler.
func (h *ProductHandler) storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return notFound(c)
	}
	return err
}

func productID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return 0, validation.FieldErrors{{Field: "id", Error: "must be a non-negative integer"}}
	}
	return uint(id), nil
}
