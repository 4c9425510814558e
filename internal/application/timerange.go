package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/domain"
)

// ErrInvalidPackageDuration se retorna cuando un horario sin hora de fin
// explícita pertenece a un paquete sin duración positiva
var ErrInvalidPackageDuration = fmt.Errorf("%s: el paquete no tiene duración definida", domain.CodeInvalidPackage)

// ErrInvalidTimeSlot se retorna cuando el token de horario no se puede parsear
var ErrInvalidTimeSlot = fmt.Errorf("%s: horario inválido", domain.CodeInvalidTimeRange)

// TimeRange es un rango absoluto resuelto a partir de fecha + horario
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveTimeRange convierte una fecha (YYYY-MM-DD) y un token de horario en
// un rango absoluto. Un token con separador "-" es un rango explícito
// ("14:00-22:00"); sin separador es solo la hora de inicio y el fin se deriva
// de la duración del paquete.
//
// La resolución es determinista: la misma tripleta (fecha, horario, duración)
// produce siempre el mismo rango, y la verificación de disponibilidad y la
// creación de la reserva deben resolver idéntico a partir de ella.
//
// Un rango explícito cuyo fin es numéricamente menor que el inicio
// ("22:00-02:00") cruza la medianoche: el fin rueda al día siguiente, nunca
// se produce un fin anterior al inicio.
func ResolveTimeRange(date, timeSlot string, durationMinutes int) (TimeRange, error) {
	startToken, endToken := splitTimeSlot(timeSlot)
	if startToken == "" {
		return TimeRange{}, ErrInvalidTimeSlot
	}

	start, err := combineDateTime(date, startToken)
	if err != nil {
		return TimeRange{}, err
	}

	if endToken != "" {
		end, err := combineDateTime(date, endToken)
		if err != nil {
			return TimeRange{}, err
		}
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		return TimeRange{Start: start, End: end}, nil
	}

	if durationMinutes <= 0 {
		return TimeRange{}, ErrInvalidPackageDuration
	}
	return TimeRange{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// DurationHours retorna la duración en horas entre dos horas del día con
// aritmética módulo 24, para rangos que cruzan la medianoche
func DurationHours(startHour, endHour int) int {
	return ((endHour-startHour)%24 + 24) % 24
}

// splitTimeSlot separa el token en inicio y fin, quitando el marcador de
// segundos ":00" final de cada lado ("14:00:00" queda "14:00")
func splitTimeSlot(timeSlot string) (start, end string) {
	value := strings.TrimSpace(timeSlot)
	if idx := strings.Index(value, "-"); idx >= 0 {
		start = normalizeClock(value[:idx])
		end = normalizeClock(value[idx+1:])
		return start, end
	}
	return normalizeClock(value), ""
}

func normalizeClock(value string) string {
	value = strings.TrimSpace(value)
	// "HH:MM:00" -> "HH:MM"
	if strings.Count(value, ":") == 2 && strings.HasSuffix(value, ":00") {
		value = strings.TrimSuffix(value, ":00")
	}
	return value
}

// combineDateTime arma un timestamp local a partir de fecha y hora del día.
// Acepta "HH" y "HH:MM".
func combineDateTime(date, clock string) (time.Time, error) {
	year, month, day, err := parseDateParts(date)
	if err != nil {
		return time.Time{}, err
	}

	hourText := clock
	minuteText := "0"
	if idx := strings.Index(clock, ":"); idx >= 0 {
		hourText = clock[:idx]
		minuteText = clock[idx+1:]
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, ErrInvalidTimeSlot
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, ErrInvalidTimeSlot
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), nil
}

// parseDateParts descompone una fecha YYYY-MM-DD en sus componentes de
// calendario, sin pasar por un parseo sensible a zona horaria
func parseDateParts(date string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%s: formato de fecha inválido: %s", domain.CodeInvalidTimeRange, date)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: formato de fecha inválido: %s", domain.CodeInvalidTimeRange, date)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("%s: formato de fecha inválido: %s", domain.CodeInvalidTimeRange, date)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("%s: formato de fecha inválido: %s", domain.CodeInvalidTimeRange, date)
	}
	return year, month, day, nil
}

// IsWeekend clasifica la fecha como fin de semana (sábado o domingo) usando
// los componentes de calendario locales
func IsWeekend(date string) bool {
	year, month, day, err := parseDateParts(date)
	if err != nil {
		return false
	}
	weekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
