package handler

import (
	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PromotionHandler struct {
	service service.PromotionService
}

func NewPromotionHandler(s service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: s}
}

func (h *PromotionHandler) GetDiscounts(c *fiber.Ctx) error {
	list, err := h.service.ListDiscounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *PromotionHandler) CreateDiscount(c *fiber.Ctx) error {
	var in service.DiscountInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	d, err := h.service.CreateDiscount(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Discount created", "data": d})
}

func (h *PromotionHandler) UpdateDiscount(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	var in service.DiscountInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	d, err := h.service.UpdateDiscount(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Discount updated", "data": d})
}

func (h *PromotionHandler) DeleteDiscount(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteDiscount(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Discount deleted"})
}

func (h *PromotionHandler) ToggleDiscount(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	d, err := h.service.ToggleDiscount(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *PromotionHandler) GetFees(c *fiber.Ctx) error {
	list, err := h.service.ListFees(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *PromotionHandler) CreateFee(c *fiber.Ctx) error {
	var in service.FeeInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	f, err := h.service.CreateFee(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Fee created", "data": f})
}

func (h *PromotionHandler) UpdateFee(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	var in service.FeeInput
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	f, err := h.service.UpdateFee(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Fee updated", "data": f})
}

func (h *PromotionHandler) DeleteFee(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteFee(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Fee deleted"})
}

func (h *PromotionHandler) ToggleFee(c *fiber.Ctx) error {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		return err
	}
	f, err := h.service.ToggleFee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(f)
}
