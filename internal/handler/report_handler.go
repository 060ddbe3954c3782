package handler

import (
	"bytes"

	"go-cafe-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func reportFilter(c *fiber.Ctx) service.ReportFilter {
	return service.ReportFilter{
		Range: service.ReportRange(c.Query("range", string(service.RangeAll))),
		Query: c.Query("q"),
	}
}

func (h *ReportHandler) GetSales(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), reportFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

func (h *ReportHandler) ExportSales(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.UserContext(), reportFilter(c), &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Attachment("sales_report.csv")
	return c.Send(buf.Bytes())
}
