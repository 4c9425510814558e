package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/infrastructure/repository"
)

func TestRedisStore_GetMissingSessionReturnsNil(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	mockRedis.ExpectGet("wizard:sess:no-existe").RedisNil()

	state, err := store.Get(context.Background(), "no-existe")

	require.NoError(t, err)
	assert.Nil(t, state)
	require.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_SaveAndGetSession(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	state := &domain.ReservationState{
		Step:      2,
		Date:      "2024-03-15",
		PackageID: "4H",
		Adults:    4,
		Extras:    map[string]bool{"kayak": true},
	}
	data, err := json.Marshal(state)
	require.NoError(t, err)

	mockRedis.ExpectSet("wizard:sess:abc", data, repository.SessionTTL).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), "abc", state))

	mockRedis.ExpectGet("wizard:sess:abc").SetVal(string(data))
	got, err := store.Get(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, state, got)
	require.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_GetCorruptSessionFails(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	mockRedis.ExpectGet("wizard:sess:abc").SetVal("{no es json")

	_, err := store.Get(context.Background(), "abc")

	assert.Error(t, err)
}

func TestRedisStore_DeleteSession(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	mockRedis.ExpectDel("wizard:sess:abc").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "abc"))
	require.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_ConfirmationRoundTrip(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	record := &domain.ConfirmationRecord{
		ReservationID: "res-1",
		CustomerID:    "user-1",
		PackageLabel:  "Paquete 4 horas",
		Date:          "2024-03-15",
		TimeSlot:      "08:00",
		CabinCode:     "CAB-3",
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)

	mockRedis.ExpectSet("reservation:last:user-1", data, repository.ConfirmationTTL).SetVal("OK")
	require.NoError(t, store.SaveConfirmation(context.Background(), record))

	mockRedis.ExpectGet("reservation:last:user-1").SetVal(string(data))
	got, err := store.GetConfirmation(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, record, got)
	require.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisStore_GetConfirmationMissingReturnsNil(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	mockRedis.ExpectGet("reservation:last:user-1").RedisNil()

	record, err := store.GetConfirmation(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRedisStore_TransportErrorPropagates(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := repository.NewRedisStore(db)

	mockRedis.ExpectGet("wizard:sess:abc").SetErr(errors.New("connection refused"))

	_, err := store.Get(context.Background(), "abc")

	assert.Error(t, err)
}
