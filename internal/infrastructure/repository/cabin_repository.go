package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type cabinRepository struct {
	db *sql.DB
}

// NewCabinRepository crea una nueva instancia del repositorio de cabañas.
// Sus dos operaciones delegan en procedimientos almacenados que corren como
// transacciones atómicas en el backend: dos navegadores compitiendo por la
// misma cabaña en el mismo rango se resuelven ahí, no aquí.
func NewCabinRepository(db *sql.DB) domain.CabinRepository {
	return &cabinRepository{db: db}
}

// AssignCabin llama al procedimiento de asignación atómica de cabañas.
// Retorna el código de la cabaña asignada, cadena vacía si ninguna quedó
// disponible, o el error de dominio del procedimiento.
func (r *cabinRepository) AssignCabin(ctx context.Context, startAt, endAt time.Time, people int) (string, error) {
	query := `SELECT assign_cabin($1, $2, $3)`

	var cabinID sql.NullString
	err := r.db.QueryRowContext(ctx, query, startAt, endAt, people).Scan(&cabinID)
	if err != nil {
		return "", fmt.Errorf("error al asignar cabaña: %w", err)
	}

	if !cabinID.Valid {
		return "", nil
	}
	return cabinID.String, nil
}

// CreateReservation llama al procedimiento atómico de creación de reservas
// con la carga completa del asistente más el ID del cliente autenticado
func (r *cabinRepository) CreateReservation(ctx context.Context, params domain.CreateReservationParams) (*domain.ReservationResult, error) {
	extrasJSON, err := json.Marshal(params.Extras)
	if err != nil {
		return nil, fmt.Errorf("error al serializar extras: %w", err)
	}

	query := `
		SELECT reservation_id, cabin_id, total_amount
		FROM create_reservation_public($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var result domain.ReservationResult
	err = r.db.QueryRowContext(
		ctx,
		query,
		params.PackageID,
		params.ReservedDate,
		params.StartAt,
		params.EndAt,
		params.Adults,
		params.Kids,
		string(params.PaymentMethod),
		string(extrasJSON),
		params.SpecialRequest,
		params.CustomerID,
	).Scan(&result.ReservationID, &result.CabinID, &result.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("error al crear reserva: %w", err)
	}

	return &result, nil
}
