// Package mailer turns queued mail messages into SMTP messages.
package mailer

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var ErrUnknownMailType = errors.New("unknown mail type")

type kind struct {
	template string
	subject  string
	data     func() any
}

var kinds = map[string]kind{
	domain.MailCreateUser: {
		template: "new_account_email.html",
		subject:  "The Bay Services - Your account",
		data:     func() any { return &domain.CreateUserMailData{} },
	},
	domain.MailResetPassword: {
		template: "reset_password_otp_email.html",
		subject:  "The Bay Services - Reset your password",
		data:     func() any { return &domain.ResetPasswordMailData{} },
	},
}

type envelope struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

// Compose decodes a queued message body and renders it into a mail from
// sender. Errors mean the body can never be delivered.
func Compose(body []byte, sender string) (*mail.Msg, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	k, ok := kinds[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMailType, env.Type)
	}

	data := k.data()
	if err := json.Unmarshal(env.Data, data); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.From(sender); err != nil {
		return nil, err
	}
	if err := m.To(env.To); err != nil {
		return nil, err
	}
	m.Subject(k.subject)

	tmpl := templates.Lookup(k.template)
	if err := m.SetBodyHTMLTemplate(tmpl, data); err != nil {
		return nil, err
	}

	return m, nil
}
