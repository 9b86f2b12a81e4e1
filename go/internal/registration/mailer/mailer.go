package mailer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/registration/events"
)

// Registration is what the confirmation e-mail says about a new player
type Registration struct {
	PlayerID        string
	FirstName       string
	LastName        string
	Email           string
	TeamName        string
	SportName       string
	Folio           string
	TeamInternalID  int
	PrimaryPosition string
	RegisteredAt    time.Time
}

// FromPayload maps a player_registered payload onto a Registration.
func FromPayload(p events.PlayerRegisteredPayload) Registration {
	return Registration{
		PlayerID:        p.PlayerID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		TeamName:        p.TeamName,
		SportName:       p.SportName,
		Folio:           p.Folio,
		TeamInternalID:  p.TeamInternalID,
		PrimaryPosition: p.PrimaryPosition,
		RegisteredAt:    p.RegisteredAt,
	}
}

// Mailer sends the registration confirmation.
type Mailer interface {
	Send(ctx context.Context, reg Registration) error
}

var bodyTemplate = template.Must(template.New("registration").Parse(`Hola {{.FirstName}},

Tu registro en la liga deportiva ha sido exitoso.

Folio de registro: {{or .Folio "Por asignar"}}

Equipo:      {{.TeamName}}
Deporte:     {{or .SportName "No especificado"}}
ID interno:  {{if .TeamInternalID}}{{.TeamInternalID}}{{else}}Por asignar{{end}}

Nombre:      {{.FirstName}} {{.LastName}}
Email:       {{.Email}}
Posición:    {{or .PrimaryPosition "Por asignar"}}

Guarda este folio para cualquier consulta o aclaración.

Liga Deportiva {{.Year}}
Este es un correo automático, por favor no responder.
`))

// Render returns the subject and plain-text body of the confirmation.
func Render(reg Registration) (string, string, error) {
	if reg.Email == "" {
		return "", "", fmt.Errorf("registration %s has no email", reg.PlayerID)
	}
	if reg.TeamName == "" {
		return "", "", fmt.Errorf("registration %s has no team", reg.PlayerID)
	}

	year := reg.RegisteredAt.Year()
	if reg.RegisteredAt.IsZero() {
		year = time.Now().Year()
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Registration
		Year int
	}{reg, year})
	if err != nil {
		return "", "", fmt.Errorf("render registration email: %w", err)
	}
	return fmt.Sprintf("Confirmación de Registro - %s", reg.TeamName), buf.String(), nil
}

// LogMailer writes the rendered confirmation to the log. Used when SMTP is
// not configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, reg Registration) error {
	subject, body, err := Render(reg)
	if err != nil {
		return err
	}
	log.Info().
		Str("to", reg.Email).
		Str("subject", subject).
		Str("folio", reg.Folio).
		Str("body", body).
		Msg("registration email (smtp disabled)")
	return nil
}
