package handler

import (
	"strings"

	"go-cafe-pos/internal/service"
	"go-cafe-pos/pkg/imageenc"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, err := h.service.ListProducts(c.UserContext(), service.ProductQuery{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("per_page", service.DefaultPerPage),
	})
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in service.ProductInput
	if isMultipart(c) {
		patch, err := parseProductForm(c)
		if err != nil {
			return err
		}
		in = patch.toInput()
	} else if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}

	product, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var patch service.ProductPatch
	if isMultipart(c) {
		p, err := parseProductForm(c)
		if err != nil {
			return err
		}
		patch = p.ProductPatch
	} else if err := c.BodyParser(&patch); err != nil {
		return invalidJSON(c)
	}

	updated, err := h.service.UpdateProduct(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

type productForm struct {
	service.ProductPatch
}

func (f productForm) toInput() service.ProductInput {
	var in service.ProductInput
	if f.Name != nil {
		in.Name = *f.Name
	}
	if f.SKU != nil {
		in.SKU = *f.SKU
	}
	if f.Description != nil {
		in.Description = *f.Description
	}
	if f.Price != nil {
		in.Price = *f.Price
	}
	if f.Stock != nil {
		in.Stock = *f.Stock
	}
	if f.Category != nil {
		in.Category = *f.Category
	}
	if f.Image != nil {
		in.Image = *f.Image
	}
	if f.Gallery != nil {
		in.Gallery = *f.Gallery
	}
	return in
}

// parseProductForm reads a multipart product form. Uploaded files in "image"
// and "gallery" are encoded as data URLs; if any file fails nothing is
// returned.
func parseProductForm(c *fiber.Ctx) (productForm, error) {
	var f productForm
	form, err := c.MultipartForm()
	if err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	for key, dst := range map[string]**string{
		"name":        &f.Name,
		"sku":         &f.SKU,
		"description": &f.Description,
		"category":    &f.Category,
		"image":       &f.Image,
	} {
		if v, ok := formValue(form, key); ok {
			v := v
			*dst = &v
		}
	}

	if f.Price, err = formInt64(form, "price"); err != nil {
		return f, err
	}
	stock, err := formInt64(form, "stock")
	if err != nil {
		return f, err
	}
	if stock != nil {
		n := int(*stock)
		f.Stock = &n
	}

	if files := form.File["image"]; len(files) > 0 {
		urls, err := imageenc.EncodeAll(files)
		if err != nil {
			return f, fiber.NewError(fiber.StatusUnprocessableEntity, "Image upload failed: "+err.Error())
		}
		joined := strings.Join(urls, ",")
		f.Image = &joined
	}
	if files := form.File["gallery"]; len(files) > 0 {
		urls, err := imageenc.EncodeAll(files)
		if err != nil {
			return f, fiber.NewError(fiber.StatusUnprocessableEntity, "Gallery upload failed: "+err.Error())
		}
		f.Gallery = &urls
	}
	return f, nil
}
