package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type ReservationHandler struct {
	service *application.ReservationService
}

// NewReservationHandler crea una nueva instancia del handler de reservas
func NewReservationHandler(service *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		service: service,
	}
}

// ReservationExtraRequest es un extra seleccionado dentro del envío directo
type ReservationExtraRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"` // 0 u omitido equivale a 1
}

// CreateReservationRequest representa el envío directo de una reserva, sin
// pasar por una sesión del asistente
type CreateReservationRequest struct {
	PackageID      string                    `json:"packageId"`
	Date           string                    `json:"date"`     // Formato: YYYY-MM-DD
	TimeSlot       string                    `json:"timeSlot"` // "HH:MM" o "HH:MM - HH:MM"
	Adults         int                       `json:"adults"`
	Kids           int                       `json:"kids"`
	Extras         []ReservationExtraRequest `json:"extras,omitempty"`
	PaymentMethod  string                    `json:"paymentMethod,omitempty"`
	SpecialRequest *string                   `json:"specialRequest,omitempty"`
}

// CreateReservation crea una reserva a nombre del usuario autenticado
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var req CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   string(domain.CodeInvalidPayload),
			"message": domain.CodeInvalidPayload.UserMessage(),
		})
	}

	extras := make(map[string]bool, len(req.Extras))
	quantities := make(map[string]int, len(req.Extras))
	for _, extra := range req.Extras {
		extras[extra.ID] = true
		quantities[extra.ID] = extra.Quantity
	}
	state := &domain.ReservationState{
		Date:          req.Date,
		PackageID:     req.PackageID,
		TimeSlot:      req.TimeSlot,
		Adults:        req.Adults,
		Kids:          req.Kids,
		Extras:        extras,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	result, err := h.service.Submit(c.Context(), CustomerFromCtx(c), state, quantities, req.SpecialRequest)
	if err != nil {
		return renderReservationError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":           result.Reservation.ReservationID,
		"cabinId":      result.Reservation.CabinID,
		"total":        result.Reservation.TotalAmount,
		"phoneMissing": result.PhoneMissing,
	})
}

// GetActiveReservation retorna la última reserva del usuario si sigue activa
func (h *ReservationHandler) GetActiveReservation(c *fiber.Ctx) error {
	customer := CustomerFromCtx(c)

	record, phoneMissing, err := h.service.GetActiveReservation(c.Context(), customer.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.JSON(fiber.Map{
			"data": nil,
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"reservation":  record,
			"phoneMissing": phoneMissing,
		},
	})
}
