package email

// Provider sends transactional mail. Services treat a nil provider as
// "email disabled" and skip sending.
type Provider interface {
	Send(to, subject, htmlBody string) error

	// SendWelcome greets a freshly registered user.
	SendWelcome(to, name string) error
}
