package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

func testPackages() []domain.Package {
	return []domain.Package{
		{
			ID:               "4H",
			Label:            "Paquete 4 horas",
			DurationMinutes:  240,
			PricePerAdult:    12,
			KidDiscount:      0.5,
			MinPeopleWeekday: 4,
			MinPeopleWeekend: 8,
		},
		{
			ID:               "EVENTO",
			Label:            "Evento especial",
			PricePerAdult:    20,
			KidDiscount:      0.5,
			MinPeopleWeekday: 6,
			MinPeopleWeekend: 6,
		},
	}
}

func testExtras() []domain.Extra {
	return []domain.Extra{
		{ID: "kayak", Label: "Kayak", Price: 15},
		{ID: "parrilla", Label: "Parrilla", Price: 25},
	}
}

func TestCalcTotal_AppliesMinPeopleFloor(t *testing.T) {
	// 2 adultos a $12 serían $24, pero el mínimo entre semana es 4 personas
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:        "4H",
		Adults:           2,
		Kids:             0,
		Packages:         testPackages(),
		ExtrasCatalog:    testExtras(),
		MinPeopleForDate: 4,
	})

	assert.Equal(t, 48.0, totals.Base)
	assert.Equal(t, 0.0, totals.ExtrasTotal)
	assert.Equal(t, 48.0, totals.Total)
}

func TestCalcTotal_AboveMinimumChargesExact(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:        "4H",
		Adults:           4,
		Kids:             2,
		Packages:         testPackages(),
		ExtrasCatalog:    testExtras(),
		MinPeopleForDate: 4,
	})

	// 4*12 + 2*12*0.5 = 60
	assert.Equal(t, 60.0, totals.Base)
	assert.Equal(t, 60.0, totals.Total)
}

func TestCalcTotal_WeekendMinimumRaisesFloor(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:        "4H",
		Adults:           4,
		Kids:             0,
		Packages:         testPackages(),
		MinPeopleForDate: 8,
	})

	// 4*12 = 48 queda por debajo del piso de fin de semana 8*12
	assert.Equal(t, 96.0, totals.Base)
}

func TestCalcTotal_FallsBackToDefaultMinimum(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID: "4H",
		Adults:    1,
		Packages:  testPackages(),
	})

	// sin mínimo efectivo se usa el piso por defecto de 4 personas
	assert.Equal(t, 48.0, totals.Base)
}

func TestCalcTotal_ExtrasAreFlatPriced(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:        "4H",
		Adults:           4,
		Extras:           map[string]bool{"kayak": true, "parrilla": true},
		Packages:         testPackages(),
		ExtrasCatalog:    testExtras(),
		MinPeopleForDate: 4,
	})

	assert.Equal(t, 48.0, totals.Base)
	assert.Equal(t, 40.0, totals.ExtrasTotal)
	assert.Equal(t, 88.0, totals.Total)
}

func TestCalcTotal_DeselectedExtraNotCharged(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:        "4H",
		Adults:           4,
		Extras:           map[string]bool{"kayak": true, "parrilla": false},
		Packages:         testPackages(),
		ExtrasCatalog:    testExtras(),
		MinPeopleForDate: 4,
	})

	assert.Equal(t, 15.0, totals.ExtrasTotal)
}

func TestCalcTotal_UnknownPackageYieldsZero(t *testing.T) {
	totals := application.CalcTotal(application.CalcTotalInput{
		PackageID:     "NO_EXISTE",
		Adults:        4,
		Extras:        map[string]bool{"kayak": true},
		Packages:      testPackages(),
		ExtrasCatalog: testExtras(),
	})

	assert.Equal(t, domain.ReservationTotals{}, totals)
}

func TestMinPeopleForDate(t *testing.T) {
	pkg := &testPackages()[0]

	// 2024-01-06 es sábado, 2024-01-07 domingo, 2024-01-08 lunes
	assert.Equal(t, 8, application.MinPeopleForDate(pkg, "2024-01-06"))
	assert.Equal(t, 8, application.MinPeopleForDate(pkg, "2024-01-07"))
	assert.Equal(t, 4, application.MinPeopleForDate(pkg, "2024-01-08"))
	assert.Equal(t, 0, application.MinPeopleForDate(nil, "2024-01-08"))
}
