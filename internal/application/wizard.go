package application

import (
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// ActionType identifica una transición del asistente de reserva
type ActionType string

const (
	ActionSetDate          ActionType = "setDate"
	ActionSetPackage       ActionType = "setPackage"
	ActionSetTimeSlot      ActionType = "setTimeSlot"
	ActionSetAdults        ActionType = "setAdults"
	ActionSetKids          ActionType = "setKids"
	ActionSetExtra         ActionType = "setExtra"
	ActionSetCouplePackage ActionType = "setCouplePackage"
	ActionSetPayment       ActionType = "setPayment"
	ActionSetStep          ActionType = "setStep"
	ActionNextStep         ActionType = "nextStep"
	ActionPrevStep         ActionType = "prevStep"
)

// Action es una transición del asistente. Según el tipo se usa uno de los
// campos: Value para fechas, paquetes, horarios y métodos de pago; Count
// para cantidades y pasos; Flag para booleanos; ExtraID junto a Flag para
// seleccionar extras.
type Action struct {
	Type    ActionType `json:"type"`
	Value   string     `json:"value,omitempty"`
	Count   int        `json:"count,omitempty"`
	Flag    bool       `json:"flag,omitempty"`
	ExtraID string     `json:"extraId,omitempty"`
}

// Reduce aplica una acción sobre el estado y retorna el estado resultante.
// Es una función pura: no muta el estado recibido.
//
// Invariantes que mantiene:
//   - cambiar fecha o paquete limpia el horario (un horario solo vale para
//     la fecha y paquete bajo los que se eligió)
//   - adultos y niños nunca bajan de 0 ni superan juntos MaxPeople
//   - el paquete pareja fuerza adultos=2 y niños<=1 mientras esté activo
//   - el paso queda acotado a [1, totalStages]
func Reduce(state domain.ReservationState, action Action, totalStages int) domain.ReservationState {
	next := state
	next.Extras = state.Extras

	switch action.Type {
	case ActionSetDate:
		next.Date = action.Value
		next.TimeSlot = ""
	case ActionSetPackage:
		next.PackageID = action.Value
		next.TimeSlot = ""
	case ActionSetTimeSlot:
		next.TimeSlot = action.Value
	case ActionSetAdults:
		next.Adults = clampPeople(action.Count, state.Kids)
		if next.CouplePackage {
			next.Adults = 2
		}
	case ActionSetKids:
		next.Kids = clampPeople(action.Count, state.Adults)
		if next.CouplePackage && next.Kids > 1 {
			next.Kids = 1
		}
	case ActionSetExtra:
		extras := make(map[string]bool, len(state.Extras))
		for id, selected := range state.Extras {
			extras[id] = selected
		}
		extras[action.ExtraID] = action.Flag
		next.Extras = extras
	case ActionSetCouplePackage:
		next.CouplePackage = action.Flag
		if action.Flag {
			next.Adults = 2
			if next.Kids > 1 {
				next.Kids = 1
			}
		}
	case ActionSetPayment:
		next.PaymentMethod = domain.PaymentMethod(action.Value)
	case ActionSetStep:
		next.Step = clampStep(action.Count, totalStages)
	case ActionNextStep:
		next.Step = clampStep(state.Step+1, totalStages)
	case ActionPrevStep:
		next.Step = clampStep(state.Step-1, totalStages)
	}

	return next
}

// NewReservationState crea el estado inicial de una sesión del asistente:
// 2 adultos, 0 niños, sin extras seleccionados, paso 1. Las llaves de extras
// se sincronizan con el catálogo cargado.
func NewReservationState(extrasCatalog []domain.Extra) domain.ReservationState {
	extras := make(map[string]bool, len(extrasCatalog))
	for _, extra := range extrasCatalog {
		extras[extra.ID] = false
	}
	return domain.ReservationState{
		Step:   1,
		Adults: 2,
		Kids:   0,
		Extras: extras,
	}
}

// StageComplete evalúa el predicado de completitud de una etapa. El avance
// del asistente y el envío final se bloquean sobre estos predicados.
func StageComplete(state *domain.ReservationState, stage domain.Stage) bool {
	switch stage {
	case domain.StageGuests:
		return state.TotalPeople() >= 4 || state.CouplePackage
	case domain.StageDatePackage:
		if state.Date == "" || state.PackageID == "" || state.TimeSlot == "" {
			return false
		}
		if state.PackageID == domain.EventPackageID {
			return state.TotalPeople() >= 6
		}
		return state.TotalPeople() >= 4 || state.CouplePackage
	case domain.StageExtras:
		// etapa opcional
		return true
	case domain.StagePayment:
		return state.PaymentMethod != "" && state.PaymentMethod.IsEnabled()
	default:
		return false
	}
}

// AllStagesComplete indica si todas las etapas activas están completas
func AllStagesComplete(state *domain.ReservationState, stages []domain.StageDescriptor) bool {
	for _, descriptor := range stages {
		if !StageComplete(state, descriptor.Stage) {
			return false
		}
	}
	return true
}

// MinWarning calcula la advertencia de mínimo de personas para la fecha
// seleccionada. Es puramente informativa: no bloquea el avance ni el envío,
// a diferencia del piso de precio que sí se aplica siempre.
func MinWarning(state *domain.ReservationState, pkg *domain.Package) (show bool, minPeople int) {
	if pkg == nil || state.Date == "" {
		return false, 0
	}
	minPeople = MinPeopleForDate(pkg, state.Date)
	return minPeople > 0 && state.TotalPeople() < minPeople, minPeople
}

func clampPeople(value, others int) int {
	if value < 0 {
		value = 0
	}
	if value > domain.MaxPeople-others {
		value = domain.MaxPeople - others
	}
	return value
}

func clampStep(step, totalStages int) int {
	if step < 1 {
		return 1
	}
	if step > totalStages {
		return totalStages
	}
	return step
}
