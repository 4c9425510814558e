package repository

import (
	"database/sql"
	"fmt"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository crea una nueva instancia del repositorio de catálogo
func NewCatalogRepository(db *sql.DB) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

// GetActivePackages obtiene los paquetes activos ordenados por duración
func (r *catalogRepository) GetActivePackages() ([]domain.Package, error) {
	query := `
		SELECT
			id,
			label,
			note,
			duration_minutes,
			base_price_per_adult,
			kid_discount,
			min_people_weekday,
			min_people_weekend,
			min_people_holiday
		FROM packages
		WHERE is_active = true
		ORDER BY duration_minutes ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener paquetes: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var pkg domain.Package
		var note sql.NullString

		err := rows.Scan(
			&pkg.ID,
			&pkg.Label,
			&note,
			&pkg.DurationMinutes,
			&pkg.PricePerAdult,
			&pkg.KidDiscount,
			&pkg.MinPeopleWeekday,
			&pkg.MinPeopleWeekend,
			&pkg.MinPeopleHoliday,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear paquete: %w", err)
		}

		if note.Valid {
			pkg.Note = &note.String
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// GetActiveTimeSlots obtiene los horarios activos de todos los paquetes. El
// ID de cada horario es su hora de inicio normalizada a "HH:MM".
func (r *catalogRepository) GetActiveTimeSlots() ([]domain.TimeSlot, error) {
	query := `
		SELECT package_id, time_of_day, label, period
		FROM package_time_slots
		WHERE is_active = true
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener horarios: %w", err)
	}
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var slot domain.TimeSlot
		var timeOfDay, period string

		if err := rows.Scan(&slot.PackageID, &timeOfDay, &slot.Label, &period); err != nil {
			return nil, fmt.Errorf("error al escanear horario: %w", err)
		}

		// "HH:MM:SS" de la columna time queda "HH:MM"
		if len(timeOfDay) > 5 {
			timeOfDay = timeOfDay[:5]
		}
		slot.TimeOfDay = timeOfDay
		slot.ID = timeOfDay
		slot.Period = domain.ParsePeriod(period)
		slots = append(slots, slot)
	}

	return slots, nil
}

// GetActiveExtras obtiene los extras activos ordenados por precio
func (r *catalogRepository) GetActiveExtras() ([]domain.Extra, error) {
	query := `
		SELECT id, label, description, price, pricing_unit
		FROM extras
		WHERE is_active = true
		ORDER BY price ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener extras: %w", err)
	}
	defer rows.Close()

	var extras []domain.Extra
	for rows.Next() {
		var extra domain.Extra
		var description sql.NullString
		var pricingUnit string

		err := rows.Scan(&extra.ID, &extra.Label, &description, &extra.Price, &pricingUnit)
		if err != nil {
			return nil, fmt.Errorf("error al escanear extra: %w", err)
		}

		if description.Valid {
			extra.Description = &description.String
		}
		extra.PricingUnit = domain.PricingUnit(pricingUnit)
		extras = append(extras, extra)
	}

	return extras, nil
}
