package repository

import (
	"database/sql"
	"fmt"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository crea una nueva instancia del repositorio de perfiles
func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID obtiene el perfil de un usuario; retorna (nil, nil) si no existe
func (r *profileRepository) GetByUserID(userID string) (*domain.Profile, error) {
	query := `SELECT user_id, phone FROM profiles WHERE user_id = $1`

	var profile domain.Profile
	var phone sql.NullString

	err := r.db.QueryRow(query, userID).Scan(&profile.UserID, &phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al obtener perfil: %w", err)
	}

	if phone.Valid {
		profile.Phone = phone.String
	}
	return &profile, nil
}

// UpsertPhone crea o actualiza el teléfono del usuario
func (r *profileRepository) UpsertPhone(userID, phone string) error {
	query := `
		INSERT INTO profiles (user_id, phone)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET phone = EXCLUDED.phone
	`

	if _, err := r.db.Exec(query, userID, phone); err != nil {
		return fmt.Errorf("error al guardar teléfono: %w", err)
	}
	return nil
}
