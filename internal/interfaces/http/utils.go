package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// renderSubmissionError traduce una falla del servicio de reservas a la
// respuesta HTTP. Los códigos estructurados salen como 400 con su mensaje
// fijo y sin normalizar; cualquier otro error es un 500 genérico (el texto
// crudo del backend nunca llega al cliente).
func renderSubmissionError(c *fiber.Ctx, err error) error {
	var serr *application.SubmissionError
	if errors.As(err, &serr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   string(serr.Code),
			"message": serr.Message(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   string(domain.CodeUnknown),
		"message": domain.CodeUnknown.UserMessage(),
	})
}

// renderReservationError es la variante del envío de reservas: el contrato
// de creación reporta el paquete desconocido como "invalid_package" en
// minúsculas; el resto de los códigos salen tal cual
func renderReservationError(c *fiber.Ctx, err error) error {
	var serr *application.SubmissionError
	if errors.As(err, &serr) && serr.Code == domain.CodeInvalidPackage {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_package",
			"message": serr.Message(),
		})
	}
	return renderSubmissionError(c, err)
}
