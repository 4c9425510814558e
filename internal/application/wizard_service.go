package application

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// WizardConfigKey es la llave de la configuración remota del asistente
const WizardConfigKey = "public_wizard"

// ErrSessionNotFound se retorna cuando la sesión del asistente no existe o expiró
var ErrSessionNotFound = fmt.Errorf("sesión de reserva no encontrada")

// WizardService maneja las sesiones del asistente de reserva: creación,
// despacho de acciones y vista derivada (totales, completitud, advertencias)
type WizardService struct {
	sessions   domain.WizardSessionStore
	configRepo domain.WizardConfigRepository
	catalog    *CatalogService
}

// NewWizardService crea una nueva instancia del servicio del asistente
func NewWizardService(
	sessions domain.WizardSessionStore,
	configRepo domain.WizardConfigRepository,
	catalog *CatalogService,
) *WizardService {
	return &WizardService{
		sessions:   sessions,
		configRepo: configRepo,
		catalog:    catalog,
	}
}

// WizardView es la proyección de una sesión que consume el cliente: estado,
// etapas activas, totales derivados y predicados de completitud. Los totales
// nunca se almacenan; se recalculan en cada lectura.
type WizardView struct {
	SessionID      string                     `json:"sessionId"`
	State          domain.ReservationState    `json:"state"`
	Stages         []domain.StageDescriptor   `json:"stages"`
	Totals         domain.ReservationTotals   `json:"totals"`
	StageComplete  map[string]bool            `json:"stageComplete"`
	AllComplete    bool                       `json:"allComplete"`
	ShowMinWarning bool                       `json:"showMinWarning"`
	MinPeople      int                        `json:"minPeople"`
	Progress       int                        `json:"progress"`
	PaymentMethods []domain.PaymentMethodInfo `json:"paymentMethods"`
}

// Stages resuelve la secuencia de etapas activas: configuración remota si
// existe, con la secuencia por defecto como respaldo. Una configuración
// inalcanzable o vacía nunca bloquea el asistente.
func (s *WizardService) Stages() []domain.StageDescriptor {
	config, err := s.configRepo.GetWizardConfig(WizardConfigKey)
	if err != nil {
		log.Printf("No se pudo cargar la configuración del asistente, usando etapas por defecto: %v", err)
		return domain.DefaultStages()
	}
	if config == nil || len(config.Steps) == 0 {
		return domain.DefaultStages()
	}

	stages := make([]domain.StageDescriptor, 0, len(config.Steps))
	for _, descriptor := range config.Steps {
		if descriptor.Stage == domain.StageUnknown || !descriptor.IsEnabled() {
			continue
		}
		stages = append(stages, descriptor)
	}
	if len(stages) == 0 {
		return domain.DefaultStages()
	}
	return stages
}

// CreateSession crea una sesión nueva con el estado por defecto. Si se
// indica un paquete (enlace profundo ?package=) y existe en el catálogo,
// queda preseleccionado.
func (s *WizardService) CreateSession(ctx context.Context, preselectPackage string) (*WizardView, error) {
	catalog, err := s.catalog.GetCatalog()
	if err != nil {
		return nil, err
	}

	state := NewReservationState(catalog.Extras)
	if preselectPackage != "" && catalog.FindPackage(preselectPackage) != nil {
		state.PackageID = preselectPackage
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, &state); err != nil {
		return nil, fmt.Errorf("error al guardar sesión: %w", err)
	}

	return s.buildView(sessionID, &state, catalog, s.Stages()), nil
}

// GetSession retorna la vista actual de una sesión
func (s *WizardService) GetSession(ctx context.Context, sessionID string) (*WizardView, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.GetCatalog()
	if err != nil {
		return nil, err
	}
	return s.buildView(sessionID, state, catalog, s.Stages()), nil
}

// Dispatch aplica una acción del asistente sobre la sesión y persiste el
// estado resultante
func (s *WizardService) Dispatch(ctx context.Context, sessionID string, action Action) (*WizardView, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.GetCatalog()
	if err != nil {
		return nil, err
	}

	stages := s.Stages()
	next := Reduce(*state, action, len(stages))

	if err := s.sessions.Save(ctx, sessionID, &next); err != nil {
		return nil, fmt.Errorf("error al guardar sesión: %w", err)
	}
	return s.buildView(sessionID, &next, catalog, stages), nil
}

// DeleteSession descarta una sesión del asistente. No requiere rollback:
// no existe reserva en el servidor hasta que la creación tiene éxito.
func (s *WizardService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionState retorna el estado crudo de una sesión (para el envío final)
func (s *WizardService) SessionState(ctx context.Context, sessionID string) (*domain.ReservationState, error) {
	return s.loadState(ctx, sessionID)
}

func (s *WizardService) loadState(ctx context.Context, sessionID string) (*domain.ReservationState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error al leer sesión: %w", err)
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

func (s *WizardService) buildView(sessionID string, state *domain.ReservationState, catalog *domain.Catalog, stages []domain.StageDescriptor) *WizardView {
	pkg := catalog.FindPackage(state.PackageID)

	totals := CalcTotal(CalcTotalInput{
		PackageID:        state.PackageID,
		Adults:           state.Adults,
		Kids:             state.Kids,
		Extras:           state.Extras,
		Packages:         catalog.Packages,
		ExtrasCatalog:    catalog.Extras,
		MinPeopleForDate: MinPeopleForDate(pkg, state.Date),
	})

	completeness := make(map[string]bool, len(stages))
	allComplete := true
	for _, descriptor := range stages {
		complete := StageComplete(state, descriptor.Stage)
		completeness[descriptor.Stage.String()] = complete
		if !complete {
			allComplete = false
		}
	}

	showWarning, minPeople := MinWarning(state, pkg)

	progress := 0
	if len(stages) > 0 {
		step := clampStep(state.Step, len(stages))
		progress = int(math.Round(float64(step*100) / float64(len(stages))))
	}

	return &WizardView{
		SessionID:      sessionID,
		State:          *state,
		Stages:         stages,
		Totals:         totals,
		StageComplete:  completeness,
		AllComplete:    allComplete,
		ShowMinWarning: showWarning,
		MinPeople:      minPeople,
		Progress:       progress,
		PaymentMethods: domain.PaymentMethods(),
	}
}
