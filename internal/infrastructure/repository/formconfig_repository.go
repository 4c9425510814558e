package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type formConfigRepository struct {
	db *sql.DB
}

// NewFormConfigRepository crea una nueva instancia del repositorio de
// configuración del asistente
func NewFormConfigRepository(db *sql.DB) domain.WizardConfigRepository {
	return &formConfigRepository{db: db}
}

// GetWizardConfig obtiene la configuración activa más reciente para la
// llave dada. Retorna (nil, nil) cuando no hay configuración: el servicio
// cae a la secuencia de etapas por defecto.
func (r *formConfigRepository) GetWizardConfig(key string) (*domain.WizardConfig, error) {
	query := `
		SELECT schema
		FROM form_config
		WHERE key = $1 AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var schema []byte
	err := r.db.QueryRow(query, key).Scan(&schema)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al obtener configuración del asistente: %w", err)
	}

	if len(schema) == 0 {
		return nil, nil
	}

	var config domain.WizardConfig
	if err := json.Unmarshal(schema, &config); err != nil {
		return nil, fmt.Errorf("configuración del asistente inválida: %w", err)
	}

	return &config, nil
}
