package domain

import (
	"regexp"
	"strings"
)

// ErrorCode es un código estructurado de la taxonomía de errores de reserva.
// Las violaciones de forma se rechazan localmente antes de llamar al backend;
// los rechazos de dominio del backend se traducen a estos códigos y nunca se
// muestra texto crudo del backend al usuario final.
type ErrorCode string

const (
	CodeMissingFields     ErrorCode = "missing_fields"
	CodeInvalidPayload    ErrorCode = "invalid_payload"
	CodeInvalidPeople     ErrorCode = "CM_INVALID_PEOPLE_COUNT"
	CodeInvalidPackage    ErrorCode = "CM_INVALID_PACKAGE"
	CodeInvalidTimeRange  ErrorCode = "CM_INVALID_TIME_RANGE"
	CodeMinPeopleRequired ErrorCode = "CM_MIN_PEOPLE_REQUIRED"
	CodeNoCabinAvailable  ErrorCode = "CM_NO_CABIN_AVAILABLE"
	CodeMaxPeopleExceeded ErrorCode = "CM_MAX_PEOPLE_EXCEEDED"
	CodeNotAuthenticated  ErrorCode = "not_authenticated"
	CodeUnknown           ErrorCode = "unknown_error"
)

var cmCodePattern = regexp.MustCompile(`CM_[A-Z_]+`)

// ExtractErrorCode traduce el mensaje de error del backend a un código de la
// taxonomía. Mensajes no reconocidos degradan a unknown_error.
func ExtractErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	message := err.Error()
	if match := cmCodePattern.FindString(message); match != "" {
		return ErrorCode(match)
	}
	if strings.Contains(message, "no_cabin_available") {
		return CodeNoCabinAvailable
	}
	if strings.Contains(message, "max_people_exceeded") {
		return CodeMaxPeopleExceeded
	}
	return CodeUnknown
}

var userMessages = map[ErrorCode]string{
	CodeMissingFields:     "Faltan datos de la reserva. Revisa el formulario e intenta de nuevo.",
	CodeInvalidPayload:    "La solicitud no es válida. Intenta de nuevo.",
	CodeInvalidPeople:     "La cantidad de personas no es válida.",
	CodeInvalidPackage:    "El paquete seleccionado no está disponible.",
	CodeInvalidTimeRange:  "El horario seleccionado no es válido.",
	CodeMinPeopleRequired: "No se alcanza el mínimo de personas para esta fecha.",
	CodeNoCabinAvailable:  "No hay cabañas disponibles para ese horario. Prueba otra fecha u hora.",
	CodeMaxPeopleExceeded: "La cantidad de personas supera la capacidad de la cabaña.",
	CodeNotAuthenticated:  "Debes iniciar sesión para reservar.",
	CodeUnknown:           "No pudimos procesar tu reserva. Intenta de nuevo en unos minutos.",
}

// UserMessage retorna el mensaje fijo para el usuario final asociado al
// código; códigos no mapeados usan el mensaje genérico de falla
func (c ErrorCode) UserMessage() string {
	if msg, ok := userMessages[c]; ok {
		return msg
	}
	return userMessages[CodeUnknown]
}
