package product

import (
	"go-citizen/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{Service: service}
}

// ListProducts godoc
// @Summary List all marketplace products
// @Tags products
// @Produce json
// @Success 200 {array} Product
// @Router /api/products [get]
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	products, err := c.Service.ListAll(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(products)
}

// CreateProduct godoc
// @Summary Add a marketplace product
// @Tags products
// @Accept json
// @Produce json
// @Param body body Product true "Product"
// @Success 200 {object} map[string]string
// @Router /api/products [post]
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input Product
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := c.Service.AddProduct(ctx.UserContext(), input)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Product added successfully", "id": id})
}
