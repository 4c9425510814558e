package application

import (
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// DefaultMinPeople es el mínimo de personas usado como piso de precio cuando
// no se indica el mínimo efectivo de la fecha
const DefaultMinPeople = 4

// CalcTotalInput agrupa los datos que necesita el cálculo de totales
type CalcTotalInput struct {
	PackageID        string
	Adults           int
	Kids             int
	Extras           map[string]bool
	Packages         []domain.Package
	ExtrasCatalog    []domain.Extra
	MinPeopleForDate int
}

// CalcTotal calcula los totales de una reserva. Es una función pura: sin
// I/O ni efectos secundarios.
//
// El precio base aplica un piso por mínimo de personas: un grupo por debajo
// del mínimo paga el equivalente al mínimo, pero no se le impide reservar
// (la advertencia en el asistente es aparte y no bloquea). Si el paquete no
// existe en el catálogo se retornan totales en cero: es un estado válido de
// selección incompleta, no una falla.
//
// Los extras seleccionados se cobran al precio plano listado; la unidad de
// cobro (por hora / por persona) es solo informativa.
func CalcTotal(input CalcTotalInput) domain.ReservationTotals {
	var pkg *domain.Package
	for i := range input.Packages {
		if input.Packages[i].ID == input.PackageID {
			pkg = &input.Packages[i]
			break
		}
	}
	if pkg == nil {
		return domain.ReservationTotals{}
	}

	baseRaw := float64(input.Adults)*pkg.PricePerAdult +
		float64(input.Kids)*pkg.PricePerAdult*pkg.KidDiscount

	minPeople := input.MinPeopleForDate
	if minPeople <= 0 {
		minPeople = DefaultMinPeople
	}
	minBase := float64(minPeople) * pkg.PricePerAdult

	base := baseRaw
	if minBase > base {
		base = minBase
	}

	extrasTotal := 0.0
	for _, extra := range input.ExtrasCatalog {
		if input.Extras[extra.ID] {
			extrasTotal += extra.Price
		}
	}

	return domain.ReservationTotals{
		Base:        base,
		ExtrasTotal: extrasTotal,
		Total:       base + extrasTotal,
	}
}

// MinPeopleForDate resuelve el mínimo recomendado de personas del paquete
// según la fecha: sábado y domingo usan el mínimo de fin de semana
func MinPeopleForDate(pkg *domain.Package, date string) int {
	if pkg == nil {
		return 0
	}
	if IsWeekend(date) {
		return pkg.MinPeopleWeekend
	}
	return pkg.MinPeopleWeekday
}
