package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository crea una nueva instancia del repositorio de reservas
func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{db: db}
}

// HasActiveReservation indica si el cliente tiene una reserva vigente
func (r *reservationRepository) HasActiveReservation(customerID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE customer_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND end_at > NOW()
		)
	`

	var active bool
	if err := r.db.QueryRow(query, customerID).Scan(&active); err != nil {
		return false, fmt.Errorf("error al verificar reserva activa: %w", err)
	}
	return active, nil
}

// UpdateExpiredReservations marca como completadas las reservas confirmadas
// cuyo rango ya terminó
func (r *reservationRepository) UpdateExpiredReservations() error {
	query := `
		UPDATE reservations
		SET status = 'completed'
		WHERE status = 'confirmed'
		  AND end_at < NOW()
	`

	result, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("error al actualizar reservas vencidas: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		log.Printf("Reservas marcadas como completadas: %d", rows)
	}

	return nil
}
