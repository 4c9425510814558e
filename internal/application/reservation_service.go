package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/email"
)

// SubmissionError es una falla de reserva con código estructurado. El
// handler la traduce a la respuesta HTTP y al mensaje fijo para el usuario;
// el texto crudo del backend nunca llega al cliente.
type SubmissionError struct {
	Code  domain.ErrorCode
	cause error
}

func (e *SubmissionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *SubmissionError) Unwrap() error { return e.cause }

// Message retorna el mensaje para el usuario final
func (e *SubmissionError) Message() string { return e.Code.UserMessage() }

func submissionErr(code domain.ErrorCode, cause error) *SubmissionError {
	return &SubmissionError{Code: code, cause: cause}
}

// Customer identifica al usuario autenticado que envía la reserva
type Customer struct {
	ID    string
	Email string
	Name  string
}

// AvailabilityRequest es la consulta de disponibilidad del asistente
type AvailabilityRequest struct {
	PackageID string
	Date      string
	TimeSlot  string
	Adults    int
	Kids      int
}

// AvailabilityResult es la respuesta de la verificación de disponibilidad.
// Un rechazo de dominio (sin cabañas, capacidad excedida) no es un error de
// transporte: se reporta como no disponible con su código.
type AvailabilityResult struct {
	Available bool             `json:"available"`
	CabinID   string           `json:"cabinId,omitempty"`
	Code      domain.ErrorCode `json:"error,omitempty"`
}

// SubmitResult es el resultado de un envío de reserva exitoso
type SubmitResult struct {
	Reservation  *domain.ReservationResult  `json:"reservation"`
	Confirmation *domain.ConfirmationRecord `json:"confirmation"`
	PhoneMissing bool                       `json:"phoneMissing"`
}

// ReservationService orquesta el envío de reservas: da forma a la solicitud,
// delega en los procedimientos atómicos del backend, traduce errores a la
// taxonomía y persiste el registro de confirmación por usuario
type ReservationService struct {
	cabinRepo       domain.CabinRepository
	reservationRepo domain.ReservationRepository
	catalog         *CatalogService
	confirmations   domain.ConfirmationStore
	profileRepo     domain.ProfileRepository
	emailClient     *email.Client
}

// NewReservationService crea una nueva instancia del servicio de reservas
func NewReservationService(
	cabinRepo domain.CabinRepository,
	reservationRepo domain.ReservationRepository,
	catalog *CatalogService,
	confirmations domain.ConfirmationStore,
	profileRepo domain.ProfileRepository,
	emailClient *email.Client,
) *ReservationService {
	return &ReservationService{
		cabinRepo:       cabinRepo,
		reservationRepo: reservationRepo,
		catalog:         catalog,
		confirmations:   confirmations,
		profileRepo:     profileRepo,
		emailClient:     emailClient,
	}
}

// CheckAvailability resuelve el rango absoluto de la selección y consulta el
// procedimiento atómico de asignación de cabañas. Las violaciones de forma
// retornan *SubmissionError; un rechazo de dominio del backend retorna un
// resultado no disponible con su código, sin error.
func (s *ReservationService) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	if req.PackageID == "" || req.Date == "" || req.TimeSlot == "" {
		return nil, submissionErr(domain.CodeMissingFields, nil)
	}
	totalPeople := req.Adults + req.Kids
	if totalPeople <= 0 {
		return nil, submissionErr(domain.CodeInvalidPeople, nil)
	}

	pkg, err := s.findPackage(req.PackageID)
	if err != nil {
		return nil, err
	}

	timeRange, err := ResolveTimeRange(req.Date, req.TimeSlot, pkg.DurationMinutes)
	if err != nil {
		return nil, submissionErr(domain.ExtractErrorCode(err), err)
	}

	cabinID, err := s.cabinRepo.AssignCabin(ctx, timeRange.Start, timeRange.End, totalPeople)
	if err != nil {
		return &AvailabilityResult{Available: false, Code: domain.ExtractErrorCode(err)}, nil
	}

	if cabinID == "" {
		// el procedimiento retorna NULL cuando ninguna cabaña cubre el rango
		return &AvailabilityResult{Available: false, Code: domain.CodeNoCabinAvailable}, nil
	}
	return &AvailabilityResult{Available: true, CabinID: cabinID}, nil
}

// Submit serializa el estado del asistente en la llamada de creación
// atómica. En éxito construye y persiste el registro de confirmación del
// usuario y envía el correo de confirmación (mejor esfuerzo).
//
// quantities trae la cantidad por extra seleccionado para el envío directo;
// un extra sin cantidad (o con cantidad no positiva) queda en 1, igual que
// todo extra del asistente.
func (s *ReservationService) Submit(
	ctx context.Context,
	customer Customer,
	state *domain.ReservationState,
	quantities map[string]int,
	specialRequest *string,
) (*SubmitResult, error) {
	if customer.ID == "" {
		return nil, submissionErr(domain.CodeNotAuthenticated, nil)
	}
	if state.PackageID == "" || state.Date == "" || state.TimeSlot == "" {
		return nil, submissionErr(domain.CodeMissingFields, nil)
	}
	if state.TotalPeople() <= 0 {
		return nil, submissionErr(domain.CodeInvalidPeople, nil)
	}

	catalog, err := s.catalog.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("error al cargar catálogo: %w", err)
	}
	pkg := catalog.FindPackage(state.PackageID)
	if pkg == nil {
		return nil, submissionErr(domain.CodeInvalidPackage, nil)
	}

	timeRange, err := ResolveTimeRange(state.Date, state.TimeSlot, pkg.DurationMinutes)
	if err != nil {
		return nil, submissionErr(domain.ExtractErrorCode(err), err)
	}

	paymentMethod := state.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.PaymentCash
	}

	extras := make([]domain.ReservationExtra, 0, len(state.Extras))
	extraLabels := make([]string, 0, len(state.Extras))
	for _, extra := range catalog.Extras {
		if state.Extras[extra.ID] {
			quantity := quantities[extra.ID]
			if quantity <= 0 {
				quantity = 1
			}
			extras = append(extras, domain.ReservationExtra{ID: extra.ID, Quantity: quantity})
			extraLabels = append(extraLabels, extra.Label)
		}
	}

	result, err := s.cabinRepo.CreateReservation(ctx, domain.CreateReservationParams{
		PackageID:      state.PackageID,
		ReservedDate:   state.Date,
		StartAt:        timeRange.Start,
		EndAt:          timeRange.End,
		Adults:         state.Adults,
		Kids:           state.Kids,
		PaymentMethod:  paymentMethod,
		Extras:         extras,
		SpecialRequest: specialRequest,
		CustomerID:     customer.ID,
	})
	if err != nil {
		return nil, submissionErr(domain.ExtractErrorCode(err), err)
	}

	confirmation := &domain.ConfirmationRecord{
		ReservationID: result.ReservationID,
		CustomerID:    customer.ID,
		DisplayName:   customer.Name,
		Adults:        state.Adults,
		Kids:          state.Kids,
		PackageLabel:  pkg.Label,
		Date:          state.Date,
		TimeSlot:      state.TimeSlot,
		Extras:        extraLabels,
		CabinCode:     result.CabinID,
		CreatedAt:     time.Now(),
	}
	if err := s.confirmations.SaveConfirmation(ctx, confirmation); err != nil {
		// la reserva ya existe en el backend; solo se pierde el aviso local
		log.Printf("No se pudo guardar la confirmación del usuario %s: %v", customer.ID, err)
	}

	phoneMissing, err := s.phoneMissing(customer.ID)
	if err != nil {
		log.Printf("No se pudo consultar el perfil del usuario %s: %v", customer.ID, err)
	}

	s.sendConfirmationEmail(customer, confirmation, result.TotalAmount)

	return &SubmitResult{
		Reservation:  result,
		Confirmation: confirmation,
		PhoneMissing: phoneMissing,
	}, nil
}

// GetActiveReservation retorna el registro de última reserva del usuario si
// su reserva sigue activa; descarta registros obsoletos
func (s *ReservationService) GetActiveReservation(ctx context.Context, customerID string) (*domain.ConfirmationRecord, bool, error) {
	record, err := s.confirmations.GetConfirmation(ctx, customerID)
	if err != nil {
		return nil, false, fmt.Errorf("error al leer confirmación: %w", err)
	}
	if record == nil {
		return nil, false, nil
	}

	active, err := s.reservationRepo.HasActiveReservation(customerID)
	if err != nil {
		return nil, false, fmt.Errorf("error al verificar reserva activa: %w", err)
	}
	if !active {
		if err := s.confirmations.DeleteConfirmation(ctx, customerID); err != nil {
			log.Printf("No se pudo descartar la confirmación obsoleta del usuario %s: %v", customerID, err)
		}
		return nil, false, nil
	}

	phoneMissing, err := s.phoneMissing(customerID)
	if err != nil {
		log.Printf("No se pudo consultar el perfil del usuario %s: %v", customerID, err)
	}
	return record, phoneMissing, nil
}

// UpdatePhone guarda el teléfono del usuario autenticado
func (s *ReservationService) UpdatePhone(customerID, phone string) error {
	if phone == "" {
		return submissionErr(domain.CodeMissingFields, nil)
	}
	if err := s.profileRepo.UpsertPhone(customerID, phone); err != nil {
		return fmt.Errorf("error al guardar teléfono: %w", err)
	}
	return nil
}

func (s *ReservationService) findPackage(packageID string) (*domain.Package, error) {
	catalog, err := s.catalog.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("error al cargar catálogo: %w", err)
	}
	pkg := catalog.FindPackage(packageID)
	if pkg == nil {
		return nil, submissionErr(domain.CodeInvalidPackage, nil)
	}
	return pkg, nil
}

func (s *ReservationService) phoneMissing(customerID string) (bool, error) {
	profile, err := s.profileRepo.GetByUserID(customerID)
	if err != nil {
		return false, err
	}
	return profile == nil || profile.Phone == "", nil
}

func (s *ReservationService) sendConfirmationEmail(customer Customer, record *domain.ConfirmationRecord, total float64) {
	if s.emailClient == nil || customer.Email == "" {
		return
	}
	if err := s.emailClient.SendReservationConfirmation(customer.Email, email.ReservationInfo{
		ReservationID: record.ReservationID,
		GuestName:     customer.Name,
		PackageLabel:  record.PackageLabel,
		Date:          record.Date,
		TimeSlot:      record.TimeSlot,
		Adults:        record.Adults,
		Kids:          record.Kids,
		Extras:        record.Extras,
		CabinCode:     record.CabinCode,
		Total:         total,
	}); err != nil {
		log.Printf("No se pudo enviar el correo de confirmación a %s: %v", customer.Email, err)
	}
}
