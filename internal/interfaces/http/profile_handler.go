package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
)

type ProfileHandler struct {
	service *application.ReservationService
}

// NewProfileHandler crea una nueva instancia del handler de perfil
func NewProfileHandler(service *application.ReservationService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// UpdatePhoneRequest representa la petición para guardar el teléfono de contacto
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

// UpdatePhone guarda el teléfono de contacto del usuario autenticado
func (h *ProfileHandler) UpdatePhone(c *fiber.Ctx) error {
	var req UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}
	if req.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing_phone",
		})
	}

	customer := CustomerFromCtx(c)
	if err := h.service.UpdatePhone(customer.ID, req.Phone); err != nil {
		var serr *application.SubmissionError
		if errors.As(err, &serr) {
			return renderSubmissionError(c, err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Teléfono actualizado exitosamente",
	})
}
