package domain

import (
	"context"
	"time"
)

// ReservationExtra es un extra seleccionado dentro de una solicitud de reserva
type ReservationExtra struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateReservationParams es la carga completa que recibe el procedimiento
// atómico de creación de reservas del backend
type CreateReservationParams struct {
	PackageID      string
	ReservedDate   string
	StartAt        time.Time
	EndAt          time.Time
	Adults         int
	Kids           int
	PaymentMethod  PaymentMethod
	Extras         []ReservationExtra
	SpecialRequest *string
	CustomerID     string
}

// ReservationResult es el resultado del procedimiento de creación
type ReservationResult struct {
	ReservationID string  `json:"id"`
	CabinID       string  `json:"cabinId"`
	TotalAmount   float64 `json:"total"`
}

// ConfirmationRecord es el registro de "última reserva" que se persiste por
// usuario tras una creación exitosa. Permite mostrar la confirmación (y el
// aviso de reserva duplicada) al reabrir el asistente.
type ConfirmationRecord struct {
	ReservationID string    `json:"reservationId"`
	CustomerID    string    `json:"customerId"`
	DisplayName   string    `json:"displayName,omitempty"`
	Adults        int       `json:"adults"`
	Kids          int       `json:"kids"`
	PackageLabel  string    `json:"packageLabel"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	Extras        []string  `json:"extras,omitempty"`
	CabinCode     string    `json:"cabinCode"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CabinRepository define la frontera con los procedimientos atómicos del
// backend. Ambas llamadas se ejecutan como transacciones del lado del
// servidor; la exclusión mutua (ninguna cabaña asignada dos veces en rangos
// solapados) la garantiza el procedimiento, no este cliente.
type CabinRepository interface {
	// AssignCabin intenta asignar una cabaña para el rango y la cantidad de
	// personas dadas. Retorna el código de la cabaña asignada, o un error de
	// dominio (no_cabin_available, max_people_exceeded).
	AssignCabin(ctx context.Context, startAt, endAt time.Time, people int) (string, error)
	// CreateReservation crea la reserva de forma atómica y retorna el ID de
	// reserva, la cabaña asignada y el monto total calculado por el backend.
	CreateReservation(ctx context.Context, params CreateReservationParams) (*ReservationResult, error)
}

// ReservationRepository define las operaciones directas sobre reservas
type ReservationRepository interface {
	// HasActiveReservation indica si el cliente tiene una reserva cuyo rango
	// aún no termina
	HasActiveReservation(customerID string) (bool, error)
	// UpdateExpiredReservations marca como completadas las reservas cuyo
	// rango ya pasó
	UpdateExpiredReservations() error
}

// WizardSessionStore persiste las sesiones del asistente de reserva.
// Get retorna (nil, nil) cuando la sesión no existe o expiró.
type WizardSessionStore interface {
	Get(ctx context.Context, sessionID string) (*ReservationState, error)
	Save(ctx context.Context, sessionID string, state *ReservationState) error
	Delete(ctx context.Context, sessionID string) error
}

// ConfirmationStore persiste el registro de última reserva por usuario.
// GetConfirmation retorna (nil, nil) cuando no hay registro.
type ConfirmationStore interface {
	SaveConfirmation(ctx context.Context, record *ConfirmationRecord) error
	GetConfirmation(ctx context.Context, customerID string) (*ConfirmationRecord, error)
	DeleteConfirmation(ctx context.Context, customerID string) error
}
