package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

const totalStages = 4

func TestNewReservationState_Defaults(t *testing.T) {
	state := application.NewReservationState(testExtras())

	assert.Equal(t, 1, state.Step)
	assert.Equal(t, 2, state.Adults)
	assert.Equal(t, 0, state.Kids)
	assert.False(t, state.CouplePackage)
	assert.Equal(t, map[string]bool{"kayak": false, "parrilla": false}, state.Extras)
}

func TestReduce_SetDateClearsTimeSlot(t *testing.T) {
	state := domain.ReservationState{Date: "2024-03-15", TimeSlot: "08:00"}

	next := application.Reduce(state, application.Action{
		Type:  application.ActionSetDate,
		Value: "2024-03-16",
	}, totalStages)

	assert.Equal(t, "2024-03-16", next.Date)
	assert.Empty(t, next.TimeSlot)
}

func TestReduce_SetPackageClearsTimeSlot(t *testing.T) {
	state := domain.ReservationState{PackageID: "4H", TimeSlot: "08:00"}

	next := application.Reduce(state, application.Action{
		Type:  application.ActionSetPackage,
		Value: "EVENTO",
	}, totalStages)

	assert.Equal(t, "EVENTO", next.PackageID)
	assert.Empty(t, next.TimeSlot)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := domain.ReservationState{Extras: map[string]bool{"kayak": false}}

	next := application.Reduce(state, application.Action{
		Type:    application.ActionSetExtra,
		ExtraID: "kayak",
		Flag:    true,
	}, totalStages)

	assert.False(t, state.Extras["kayak"])
	assert.True(t, next.Extras["kayak"])
}

func TestReduce_PeopleClampedToCapacity(t *testing.T) {
	state := domain.ReservationState{Adults: 2, Kids: 0}

	next := application.Reduce(state, application.Action{
		Type:  application.ActionSetAdults,
		Count: 20,
	}, totalStages)
	assert.Equal(t, domain.MaxPeople, next.Adults)

	next = application.Reduce(next, application.Action{
		Type:  application.ActionSetKids,
		Count: 5,
	}, totalStages)
	assert.Equal(t, 0, next.Kids)
	assert.LessOrEqual(t, next.TotalPeople(), domain.MaxPeople)
}

func TestReduce_NegativeCountsClampToZero(t *testing.T) {
	state := domain.ReservationState{Adults: 2, Kids: 1}

	next := application.Reduce(state, application.Action{
		Type:  application.ActionSetKids,
		Count: -3,
	}, totalStages)

	assert.Equal(t, 0, next.Kids)
}

func TestReduce_CouplePackageForcesComposition(t *testing.T) {
	state := domain.ReservationState{Adults: 6, Kids: 3}

	next := application.Reduce(state, application.Action{
		Type: application.ActionSetCouplePackage,
		Flag: true,
	}, totalStages)

	assert.Equal(t, 2, next.Adults)
	assert.Equal(t, 1, next.Kids)

	// mientras está activo los intentos de cambiar adultos no surten efecto
	next = application.Reduce(next, application.Action{
		Type:  application.ActionSetAdults,
		Count: 8,
	}, totalStages)
	assert.Equal(t, 2, next.Adults)

	next = application.Reduce(next, application.Action{
		Type:  application.ActionSetKids,
		Count: 4,
	}, totalStages)
	assert.Equal(t, 1, next.Kids)
}

func TestReduce_StepNavigation(t *testing.T) {
	state := domain.ReservationState{Step: 1}

	next := application.Reduce(state, application.Action{Type: application.ActionNextStep}, totalStages)
	assert.Equal(t, 2, next.Step)

	next = application.Reduce(next, application.Action{Type: application.ActionPrevStep}, totalStages)
	assert.Equal(t, 1, next.Step)

	// los límites se respetan en ambos extremos
	next = application.Reduce(next, application.Action{Type: application.ActionPrevStep}, totalStages)
	assert.Equal(t, 1, next.Step)

	next = application.Reduce(next, application.Action{Type: application.ActionSetStep, Count: 99}, totalStages)
	assert.Equal(t, totalStages, next.Step)
}

func TestStageComplete_Guests(t *testing.T) {
	state := &domain.ReservationState{Adults: 2}
	assert.False(t, application.StageComplete(state, domain.StageGuests))

	state.Adults = 4
	assert.True(t, application.StageComplete(state, domain.StageGuests))

	// el paquete pareja exime del mínimo de 4
	state = &domain.ReservationState{Adults: 2, CouplePackage: true}
	assert.True(t, application.StageComplete(state, domain.StageGuests))
}

func TestStageComplete_DatePackage(t *testing.T) {
	state := &domain.ReservationState{
		Adults:    4,
		Date:      "2024-03-15",
		PackageID: "4H",
		TimeSlot:  "08:00",
	}
	assert.True(t, application.StageComplete(state, domain.StageDatePackage))

	state.TimeSlot = ""
	assert.False(t, application.StageComplete(state, domain.StageDatePackage))
}

func TestStageComplete_EventRequiresSixPeople(t *testing.T) {
	state := &domain.ReservationState{
		Adults:    4,
		Date:      "2024-03-15",
		PackageID: domain.EventPackageID,
		TimeSlot:  "14:00-22:00",
	}
	assert.False(t, application.StageComplete(state, domain.StageDatePackage))

	state.Kids = 2
	assert.True(t, application.StageComplete(state, domain.StageDatePackage))

	// la pareja no exime del mínimo del paquete de eventos
	state = &domain.ReservationState{
		Adults:        2,
		CouplePackage: true,
		Date:          "2024-03-15",
		PackageID:     domain.EventPackageID,
		TimeSlot:      "14:00-22:00",
	}
	assert.False(t, application.StageComplete(state, domain.StageDatePackage))
}

func TestStageComplete_Payment(t *testing.T) {
	state := &domain.ReservationState{}
	assert.False(t, application.StageComplete(state, domain.StagePayment))

	state.PaymentMethod = domain.PaymentCash
	assert.True(t, application.StageComplete(state, domain.StagePayment))

	// los métodos deshabilitados no completan la etapa
	state.PaymentMethod = domain.PaymentYappy
	assert.False(t, application.StageComplete(state, domain.StagePayment))
}

func TestAllStagesComplete(t *testing.T) {
	state := &domain.ReservationState{
		Adults:        4,
		Date:          "2024-03-15",
		PackageID:     "4H",
		TimeSlot:      "08:00",
		PaymentMethod: domain.PaymentCash,
	}

	assert.True(t, application.AllStagesComplete(state, domain.DefaultStages()))

	state.PaymentMethod = ""
	assert.False(t, application.AllStagesComplete(state, domain.DefaultStages()))
}

func TestMinWarning(t *testing.T) {
	pkg := &testPackages()[0]

	// sábado: mínimo 8, grupo de 4 dispara la advertencia
	state := &domain.ReservationState{Adults: 4, Date: "2024-01-06"}
	show, minPeople := application.MinWarning(state, pkg)
	assert.True(t, show)
	assert.Equal(t, 8, minPeople)

	// lunes: mínimo 4, grupo de 4 no la dispara
	state.Date = "2024-01-08"
	show, minPeople = application.MinWarning(state, pkg)
	assert.False(t, show)
	assert.Equal(t, 4, minPeople)

	// sin paquete o sin fecha no hay advertencia
	show, _ = application.MinWarning(state, nil)
	assert.False(t, show)
}
