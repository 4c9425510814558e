package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

func TestExtractErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.ErrorCode
	}{
		{
			name: "código embebido en mensaje del backend",
			err:  errors.New("pq: P0001: CM_NO_CABIN_AVAILABLE"),
			want: domain.CodeNoCabinAvailable,
		},
		{
			name: "código dentro de un error envuelto",
			err:  fmt.Errorf("error al crear reserva: %w", errors.New("CM_MAX_PEOPLE_EXCEEDED")),
			want: domain.CodeMaxPeopleExceeded,
		},
		{
			name: "variante en minúsculas de sin cabañas",
			err:  errors.New("assign failed: no_cabin_available"),
			want: domain.CodeNoCabinAvailable,
		},
		{
			name: "variante en minúsculas de capacidad",
			err:  errors.New("create failed: max_people_exceeded"),
			want: domain.CodeMaxPeopleExceeded,
		},
		{
			name: "mensaje no reconocido degrada a genérico",
			err:  errors.New("connection reset by peer"),
			want: domain.CodeUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.ExtractErrorCode(tc.err))
		})
	}

	assert.Equal(t, domain.ErrorCode(""), domain.ExtractErrorCode(nil))
}

func TestUserMessage(t *testing.T) {
	// todo código conocido tiene mensaje fijo
	for _, code := range []domain.ErrorCode{
		domain.CodeMissingFields,
		domain.CodeInvalidPayload,
		domain.CodeInvalidPeople,
		domain.CodeInvalidPackage,
		domain.CodeInvalidTimeRange,
		domain.CodeMinPeopleRequired,
		domain.CodeNoCabinAvailable,
		domain.CodeMaxPeopleExceeded,
		domain.CodeNotAuthenticated,
		domain.CodeUnknown,
	} {
		assert.NotEmpty(t, code.UserMessage())
	}

	// códigos desconocidos caen en el mensaje genérico
	assert.Equal(t, domain.CodeUnknown.UserMessage(), domain.ErrorCode("CM_ALGO_NUEVO").UserMessage())
}

func TestStageJSONRoundTrip(t *testing.T) {
	data, err := domain.StageDatePackage.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"date_package"`, string(data))

	var stage domain.Stage
	assert.NoError(t, stage.UnmarshalJSON([]byte(`"payment"`)))
	assert.Equal(t, domain.StagePayment, stage)

	assert.NoError(t, stage.UnmarshalJSON([]byte(`"otra-cosa"`)))
	assert.Equal(t, domain.StageUnknown, stage)
}

func TestPaymentMethods_OnlyCashEnabled(t *testing.T) {
	for _, info := range domain.PaymentMethods() {
		assert.Equal(t, info.ID == domain.PaymentCash, info.Enabled)
	}

	assert.True(t, domain.PaymentCash.IsEnabled())
	assert.False(t, domain.PaymentYappy.IsEnabled())
	assert.False(t, domain.PaymentMethod("OTRO").IsEnabled())
}
