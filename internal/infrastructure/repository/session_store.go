package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

const (
	sessionKeyPrefix      = "wizard:sess:"
	confirmationKeyPrefix = "reservation:last:"

	// SessionTTL es la vigencia de una sesión del asistente; cada escritura
	// la renueva
	SessionTTL = 30 * time.Minute
	// ConfirmationTTL es la vigencia del registro de última reserva
	ConfirmationTTL = 30 * 24 * time.Hour
)

// RedisStore persiste sesiones del asistente y registros de confirmación en
// Redis. Implementa domain.WizardSessionStore y domain.ConfirmationStore.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore crea una nueva instancia del store sobre Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get obtiene el estado de una sesión; retorna (nil, nil) si no existe o expiró
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.ReservationState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error al leer sesión: %w", err)
	}

	var state domain.ReservationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	return &state, nil
}

// Save guarda el estado de una sesión renovando su vigencia
func (s *RedisStore) Save(ctx context.Context, sessionID string, state *domain.ReservationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error al serializar sesión: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("error al guardar sesión: %w", err)
	}
	return nil
}

// Delete descarta una sesión
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("error al eliminar sesión: %w", err)
	}
	return nil
}

// SaveConfirmation guarda el registro de última reserva del usuario
func (s *RedisStore) SaveConfirmation(ctx context.Context, record *domain.ConfirmationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error al serializar confirmación: %w", err)
	}

	key := confirmationKeyPrefix + record.CustomerID
	if err := s.client.Set(ctx, key, data, ConfirmationTTL).Err(); err != nil {
		return fmt.Errorf("error al guardar confirmación: %w", err)
	}
	return nil
}

// GetConfirmation obtiene el registro de última reserva del usuario;
// retorna (nil, nil) si no hay registro
func (s *RedisStore) GetConfirmation(ctx context.Context, customerID string) (*domain.ConfirmationRecord, error) {
	data, err := s.client.Get(ctx, confirmationKeyPrefix+customerID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error al leer confirmación: %w", err)
	}

	var record domain.ConfirmationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("confirmación corrupta: %w", err)
	}
	return &record, nil
}

// DeleteConfirmation descarta el registro de última reserva del usuario
func (s *RedisStore) DeleteConfirmation(ctx context.Context, customerID string) error {
	if err := s.client.Del(ctx, confirmationKeyPrefix+customerID).Err(); err != nil {
		return fmt.Errorf("error al eliminar confirmación: %w", err)
	}
	return nil
}
