package handler

import (
	"seafood-exporter-api/internal/model"
	"seafood-exporter-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InquiryHandler struct {
	service service.InquiryService
}

func NewInquiryHandler(s service.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: s}
}

// CreateInquiry accepts a buyer RFQ.
// POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	var inquiry model.Inquiry
	if err := c.BodyParser(&inquiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	receipt, err := h.service.Submit(c.UserContext(), &inquiry)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(receipt)
}

// GetInquiries lists stored inquiries for operators.
// GET /api/admin/inquiries
func (h *InquiryHandler) GetInquiries(c *fiber.Ctx) error {
	inquiries, err := h.service.ListInquiries(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inquiries)
}
