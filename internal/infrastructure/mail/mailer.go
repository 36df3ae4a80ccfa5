// Package mail adaptador SMTP para las notificaciones de contraseña.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/wramirez/minimarket-crm/pkg/config"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

// SMTPMailer implementa auth.Mailer sobre SMTP con gomail.
type SMTPMailer struct {
	cfg config.MailConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer.
func NewSMTPMailer(cfg config.MailConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send envía el correo en texto plano a todos los destinatarios. Sin
// configuración SMTP el envío falla con error; el llamador decide si eso es
// fatal o una advertencia.
func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if !m.cfg.Enabled() {
		return fmt.Errorf("mail: smtp no configurado")
	}
	if len(to) == 0 {
		return fmt.Errorf("mail: sin destinatarios")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar: %w", err)
	}
	m.log.Debug().Strs("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}
