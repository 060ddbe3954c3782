package handler

import (
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	view, err := h.service.GetCart(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "product_id is required"})
	}
	view, err := h.service.AddItem(c.UserContext(), req.ProductID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	view, err := h.service.SetQuantity(c.UserContext(), c.Params("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	view, err := h.service.RemoveItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
