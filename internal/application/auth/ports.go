package auth

// Mailer puerto de envío de notificaciones por correo. La implementación SMTP
// vive en infrastructure/mail; los tests usan un fake.
type Mailer interface {
	Send(to []string, subject, body string) error
}
