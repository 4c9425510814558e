package domain

import (
	"encoding/json"
	"fmt"
)

// MaxPeople es el tope duro de personas por reserva
const MaxPeople = 16

// EventPackageID identifica el paquete de eventos especiales, que exige un
// mínimo de 6 personas y acepta rangos de horario libres
const EventPackageID = "EVENTO"

// Stage identifica una etapa del asistente de reserva
type Stage int

const (
	StageUnknown Stage = iota
	StageGuests
	StageDatePackage
	StageExtras
	StagePayment
)

var stageNames = map[Stage]string{
	StageGuests:      "guests",
	StageDatePackage: "date_package",
	StageExtras:      "extras",
	StagePayment:     "payment",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStage convierte el identificador textual de una etapa; retorna
// StageUnknown para valores no reconocidos
func ParseStage(value string) Stage {
	for stage, name := range stageNames {
		if name == value {
			return stage
		}
	}
	return StageUnknown
}

func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("etapa inválida: %w", err)
	}
	*s = ParseStage(name)
	return nil
}

// StageDescriptor describe una etapa dentro de la configuración del asistente
type StageDescriptor struct {
	Stage   Stage  `json:"id"`
	Label   string `json:"label,omitempty"`
	Summary string `json:"summary,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// IsEnabled retorna true salvo que la configuración deshabilite la etapa
func (d StageDescriptor) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// WizardConfig es la configuración remota del asistente (tabla form_config).
// Si no existe o viene vacía se usa la secuencia por defecto.
type WizardConfig struct {
	Steps       []StageDescriptor `json:"steps,omitempty"`
	ShowSummary bool              `json:"show_summary,omitempty"`
}

// DefaultStages retorna la secuencia de etapas por defecto del asistente
func DefaultStages() []StageDescriptor {
	return []StageDescriptor{
		{Stage: StageGuests, Label: "Personas"},
		{Stage: StageDatePackage, Label: "Fecha y paquete"},
		{Stage: StageExtras, Label: "Extras"},
		{Stage: StagePayment, Label: "Pago"},
	}
}

// WizardConfigRepository define el acceso a la configuración remota del
// asistente. GetWizardConfig retorna (nil, nil) cuando no hay configuración.
type WizardConfigRepository interface {
	GetWizardConfig(key string) (*WizardConfig, error)
}

// PaymentMethod representa un método de pago del asistente
type PaymentMethod string

const (
	PaymentYappy  PaymentMethod = "YAPPY"
	PaymentPayPal PaymentMethod = "PAYPAL"
	PaymentCard   PaymentMethod = "CARD"
	PaymentCash   PaymentMethod = "CASH"
)

// PaymentMethodInfo describe un método de pago para el cliente
type PaymentMethodInfo struct {
	ID          PaymentMethod `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Enabled     bool          `json:"enabled"`
}

// PaymentMethods retorna los métodos de pago conocidos. Solo efectivo
// (pago al llegar) está habilitado; el resto se muestra como "próximamente".
func PaymentMethods() []PaymentMethodInfo {
	return []PaymentMethodInfo{
		{ID: PaymentYappy, Label: "Yappy", Description: "Pago rápido desde el celular.", Enabled: false},
		{ID: PaymentPayPal, Label: "PayPal", Description: "Pago seguro en línea.", Enabled: false},
		{ID: PaymentCard, Label: "Tarjeta", Description: "Crédito o débito.", Enabled: false},
		{ID: PaymentCash, Label: "Efectivo", Description: "Paga al llegar.", Enabled: true},
	}
}

// IsEnabled indica si el método de pago puede seleccionarse
func (m PaymentMethod) IsEnabled() bool {
	for _, info := range PaymentMethods() {
		if info.ID == m {
			return info.Enabled
		}
	}
	return false
}

// ReservationState es el estado de una sesión del asistente de reserva.
// Lo posee en exclusiva la máquina de estados durante un intento de reserva;
// se crea con valores por defecto y se destruye al confirmar o abandonar.
type ReservationState struct {
	Step          int             `json:"step"`
	Date          string          `json:"date,omitempty"`
	PackageID     string          `json:"packageId,omitempty"`
	TimeSlot      string          `json:"timeSlot,omitempty"`
	Adults        int             `json:"adults"`
	Kids          int             `json:"kids"`
	Extras        map[string]bool `json:"extras"`
	CouplePackage bool            `json:"couplePackage"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
}

// TotalPeople retorna la cantidad total de personas de la sesión
func (s *ReservationState) TotalPeople() int {
	return s.Adults + s.Kids
}

// ReservationTotals son los montos derivados del estado; se recalculan en
// cada cambio y nunca se almacenan
type ReservationTotals struct {
	Base        float64 `json:"base"`
	ExtrasTotal float64 `json:"extrasTotal"`
	Total       float64 `json:"total"`
}
