package scheduler

import (
	"log"
	"time"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

type ReservationScheduler struct {
	reservationRepo domain.ReservationRepository
	ticker          *time.Ticker
}

// NewReservationScheduler crea una nueva instancia del scheduler de reservas
func NewReservationScheduler(reservationRepo domain.ReservationRepository) *ReservationScheduler {
	return &ReservationScheduler{
		reservationRepo: reservationRepo,
	}
}

// Start inicia el scheduler que completa reservas vencidas cada 24 horas
func (s *ReservationScheduler) Start() {
	log.Println("🕐 Scheduler de reservas iniciado - Se ejecutará cada 24 horas")

	// Ejecutar inmediatamente al iniciar
	s.UpdateCompletedReservations()

	// Programar ejecución cada 24 horas a las 00:01 AM
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("⏰ Próxima ejecución programada: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.UpdateCompletedReservations()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.UpdateCompletedReservations()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *ReservationScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("🛑 Scheduler de reservas detenido")
	}
}

// UpdateCompletedReservations marca como completadas las reservas cuyo rango
// ya terminó
func (s *ReservationScheduler) UpdateCompletedReservations() {
	log.Println("🔄 Ejecutando actualización de reservas completadas...")

	if err := s.reservationRepo.UpdateExpiredReservations(); err != nil {
		log.Printf("❌ Error actualizando reservas completadas: %v", err)
	} else {
		log.Println("✅ Reservas completadas actualizadas exitosamente")
	}
}
