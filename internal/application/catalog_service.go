package application

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// CatalogService expone el catálogo de referencia del asistente de reserva
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService crea una nueva instancia del servicio de catálogo
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// GetCatalog carga paquetes, horarios y extras activos. Los horarios quedan
// agrupados por paquete y ordenados ascendente por minutos desde medianoche.
func (s *CatalogService) GetCatalog() (*domain.Catalog, error) {
	packages, err := s.repo.GetActivePackages()
	if err != nil {
		return nil, fmt.Errorf("error al cargar paquetes: %w", err)
	}

	timeSlots, err := s.repo.GetActiveTimeSlots()
	if err != nil {
		return nil, fmt.Errorf("error al cargar horarios: %w", err)
	}

	extras, err := s.repo.GetActiveExtras()
	if err != nil {
		return nil, fmt.Errorf("error al cargar extras: %w", err)
	}

	byPackage := make(map[string][]domain.TimeSlot)
	for _, slot := range timeSlots {
		byPackage[slot.PackageID] = append(byPackage[slot.PackageID], slot)
	}
	for _, slots := range byPackage {
		sort.SliceStable(slots, func(i, j int) bool {
			return clockToMinutes(slots[i].TimeOfDay) < clockToMinutes(slots[j].TimeOfDay)
		})
	}

	return &domain.Catalog{
		Packages:           packages,
		TimeSlotsByPackage: byPackage,
		Extras:             extras,
	}, nil
}

// clockToMinutes convierte "HH:MM" a minutos desde medianoche; valores no
// parseables quedan en 0
func clockToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute := 0
	if len(parts) == 2 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}
	return hour*60 + minute
}
