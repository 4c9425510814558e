package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type WizardHandler struct {
	wizard       *application.WizardService
	reservations *application.ReservationService
}

// NewWizardHandler crea una nueva instancia del handler del asistente
func NewWizardHandler(wizard *application.WizardService, reservations *application.ReservationService) *WizardHandler {
	return &WizardHandler{
		wizard:       wizard,
		reservations: reservations,
	}
}

// CreateSessionRequest representa la petición para iniciar una sesión del
// asistente; package permite preseleccionar un paquete (enlace profundo)
type CreateSessionRequest struct {
	Package string `json:"package,omitempty"`
}

// SubmitRequest representa la petición de envío final de una sesión
type SubmitRequest struct {
	SpecialRequest *string `json:"specialRequest,omitempty"`
}

// GetConfig retorna la secuencia de etapas activas del asistente
func (h *WizardHandler) GetConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": h.wizard.Stages(),
	})
}

// CreateSession inicia una sesión del asistente con el estado por defecto
func (h *WizardHandler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de solicitud inválido",
			})
		}
	}
	if req.Package == "" {
		req.Package = c.Query("package")
	}

	view, err := h.wizard.CreateSession(c.Context(), req.Package)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": view,
	})
}

// GetSession retorna la vista actual de una sesión del asistente
func (h *WizardHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.wizard.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return h.renderSessionError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": view,
	})
}

// DispatchAction aplica una acción sobre la sesión y retorna la vista resultante
func (h *WizardHandler) DispatchAction(c *fiber.Ctx) error {
	var action application.Action
	if err := c.BodyParser(&action); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}
	if action.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El tipo de acción es requerido",
		})
	}

	view, err := h.wizard.Dispatch(c.Context(), c.Params("id"), action)
	if err != nil {
		return h.renderSessionError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": view,
	})
}

// DeleteSession descarta una sesión del asistente
func (h *WizardHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.wizard.DeleteSession(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Sesión descartada",
	})
}

// SubmitSession envía la reserva de la sesión a nombre del usuario
// autenticado; en éxito la sesión se descarta
func (h *WizardHandler) SubmitSession(c *fiber.Ctx) error {
	var req SubmitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de solicitud inválido",
			})
		}
	}

	sessionID := c.Params("id")
	state, err := h.wizard.SessionState(c.Context(), sessionID)
	if err != nil {
		return h.renderSessionError(c, err)
	}

	if !application.AllStagesComplete(state, h.wizard.Stages()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   string(domain.CodeMissingFields),
			"message": domain.CodeMissingFields.UserMessage(),
		})
	}

	result, err := h.reservations.Submit(c.Context(), CustomerFromCtx(c), state, nil, req.SpecialRequest)
	if err != nil {
		return renderReservationError(c, err)
	}

	if err := h.wizard.DeleteSession(c.Context(), sessionID); err != nil {
		// la reserva ya quedó creada; la sesión expira sola
		log.Printf("No se pudo descartar la sesión %s tras el envío: %v", sessionID, err)
	}

	return c.JSON(fiber.Map{
		"id":           result.Reservation.ReservationID,
		"cabinId":      result.Reservation.CabinID,
		"total":        result.Reservation.TotalAmount,
		"phoneMissing": result.PhoneMissing,
	})
}

func (h *WizardHandler) renderSessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, application.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sesión de reserva no encontrada",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
