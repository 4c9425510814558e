package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type AvailabilityHandler struct {
	service *application.ReservationService
}

// NewAvailabilityHandler crea una nueva instancia del handler de disponibilidad
func NewAvailabilityHandler(service *application.ReservationService) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
	}
}

// CheckAvailabilityRequest representa la consulta de disponibilidad
type CheckAvailabilityRequest struct {
	PackageID string `json:"packageId"`
	Date      string `json:"date"`     // Formato: YYYY-MM-DD
	TimeSlot  string `json:"timeSlot"` // "HH:MM" o "HH:MM - HH:MM"
	Adults    int    `json:"adults"`
	Kids      int    `json:"kids"`
}

// CheckAvailability verifica si hay una cabaña disponible para la selección.
// Una consulta malformada retorna 400; un rechazo del backend (sin cabañas,
// capacidad excedida) retorna 200 con available=false y su código.
func (h *AvailabilityHandler) CheckAvailability(c *fiber.Ctx) error {
	var req CheckAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   string(domain.CodeInvalidPayload),
			"message": domain.CodeInvalidPayload.UserMessage(),
		})
	}

	result, err := h.service.CheckAvailability(c.Context(), application.AvailabilityRequest{
		PackageID: req.PackageID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Adults:    req.Adults,
		Kids:      req.Kids,
	})
	if err != nil {
		var serr *application.SubmissionError
		if errors.As(err, &serr) {
			return renderSubmissionError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !result.Available {
		return c.JSON(fiber.Map{
			"available": false,
			"error":     string(result.Code),
			"message":   result.Code.UserMessage(),
		})
	}

	return c.JSON(fiber.Map{
		"available": true,
		"cabinId":   result.CabinID,
	})
}
