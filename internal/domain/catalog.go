package domain

// Period representa la franja del día de un horario
type Period string

const (
	PeriodManana Period = "mañana"
	PeriodTarde  Period = "tarde"
	PeriodNoche  Period = "noche"
)

// ParsePeriod normaliza el período; valores desconocidos caen en "mañana"
func ParsePeriod(value string) Period {
	switch Period(value) {
	case PeriodManana, PeriodTarde, PeriodNoche:
		return Period(value)
	default:
		return PeriodManana
	}
}

// PricingUnit indica cómo se cobra un extra. Hoy es solo informativo:
// el motor de precios cobra el precio plano listado sin importar la unidad.
type PricingUnit string

const (
	PricingPerHour        PricingUnit = "PER_HOUR"
	PricingPerPerson      PricingUnit = "PER_PERSON"
	PricingPerReservation PricingUnit = "PER_RESERVATION"
)

// Package representa un paquete reservable (4 horas, amanecer, evento, etc.)
type Package struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	Note             *string `json:"note,omitempty"`
	DurationMinutes  int     `json:"durationMinutes"`
	PricePerAdult    float64 `json:"pricePerAdult"`
	KidDiscount      float64 `json:"kidDiscount"`
	MinPeopleWeekday int     `json:"minPeopleWeekday"`
	MinPeopleWeekend int     `json:"minPeopleWeekend"`
	MinPeopleHoliday int     `json:"minPeopleHoliday"`
}

// TimeSlot representa un horario ofrecido de un paquete. El ID es igual a
// su hora de inicio ("08:00"). Un paquete sin horarios predefinidos acepta
// rangos libres "HH:00-HH:00" compuestos por el cliente.
type TimeSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Period    Period `json:"period"`
	TimeOfDay string `json:"timeOfDay"`
	PackageID string `json:"packageId"`
}

// Extra representa un servicio adicional opcional de la reserva
type Extra struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description *string     `json:"description,omitempty"`
	Price       float64     `json:"price"`
	PricingUnit PricingUnit `json:"pricingUnit"`
}

// Catalog agrupa los datos de referencia que consume el asistente de reserva.
// Es de solo lectura: se carga una vez por sesión y nunca se muta.
type Catalog struct {
	Packages           []Package             `json:"packages"`
	TimeSlotsByPackage map[string][]TimeSlot `json:"timeSlotsByPackage"`
	Extras             []Extra               `json:"extras"`
}

// FindPackage busca un paquete por su ID; retorna nil si no existe
func (c *Catalog) FindPackage(id string) *Package {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i]
		}
	}
	return nil
}

// FindExtra busca un extra por su ID; retorna nil si no existe
func (c *Catalog) FindExtra(id string) *Extra {
	for i := range c.Extras {
		if c.Extras[i].ID == id {
			return &c.Extras[i]
		}
	}
	return nil
}

// CatalogRepository define las operaciones de lectura del catálogo
type CatalogRepository interface {
	// GetActivePackages retorna los paquetes activos ordenados por duración
	GetActivePackages() ([]Package, error)
	// GetActiveTimeSlots retorna los horarios activos de todos los paquetes
	GetActiveTimeSlots() ([]TimeSlot, error)
	// GetActiveExtras retorna los extras activos ordenados por precio
	GetActiveExtras() ([]Extra, error)
}
