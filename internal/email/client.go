package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// ReservationInfo contiene la información de la reserva para el correo de
// confirmación
type ReservationInfo struct {
	ReservationID string
	GuestName     string
	PackageLabel  string
	Date          string
	TimeSlot      string
	Adults        int
	Kids          int
	Extras        []string
	CabinCode     string
	Total         float64
}

// SendReservationConfirmation envía el correo de confirmación de reserva
func (c *Client) SendReservationConfirmation(to string, info ReservationInfo) error {
	subject := fmt.Sprintf("Reserva confirmada - Cabaña %s", info.CabinCode)

	var extrasRow string
	if len(info.Extras) > 0 {
		extrasRow = fmt.Sprintf(`<tr><td><strong>Extras:</strong></td><td>%s</td></tr>`,
			strings.Join(info.Extras, ", "))
	}

	greeting := "¡Hola!"
	if info.GuestName != "" {
		greeting = fmt.Sprintf("¡Hola, %s!", info.GuestName)
	}

	htmlBody := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #333;">
		<h2>%s</h2>
		<p>Tu reserva quedó confirmada. Estos son los detalles:</p>
		<table cellpadding="6">
			<tr><td><strong>Reserva:</strong></td><td>%s</td></tr>
			<tr><td><strong>Cabaña:</strong></td><td>%s</td></tr>
			<tr><td><strong>Paquete:</strong></td><td>%s</td></tr>
			<tr><td><strong>Fecha:</strong></td><td>%s</td></tr>
			<tr><td><strong>Horario:</strong></td><td>%s</td></tr>
			<tr><td><strong>Personas:</strong></td><td>%d adultos, %d niños</td></tr>
			%s
			<tr><td><strong>Total:</strong></td><td>$%.2f</td></tr>
		</table>
		<p>Te esperamos. Si necesitas cambiar tu reserva, contáctanos.</p>
	</body>
	</html>`,
		greeting,
		info.ReservationID,
		info.CabinCode,
		info.PackageLabel,
		info.Date,
		info.TimeSlot,
		info.Adults,
		info.Kids,
		extrasRow,
		info.Total,
	)

	return c.SendEmail(to, subject, htmlBody)
}
