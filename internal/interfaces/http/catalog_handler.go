package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler crea una nueva instancia del handler del catálogo
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// GetCatalog retorna los paquetes activos con sus horarios y los extras
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	catalog, err := h.service.GetCatalog()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"packages":  catalog.Packages,
			"timeSlots": catalog.TimeSlotsByPackage,
			"extras":    catalog.Extras,
		},
	})
}

// GetPaymentMethods retorna los métodos de pago conocidos y su disponibilidad
func (h *CatalogHandler) GetPaymentMethods(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": domain.PaymentMethods(),
	})
}
