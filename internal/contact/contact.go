// Package contact validates messages sent through the dashboard's contact form.
package contact

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromptMessage is shown when a required field is empty.
const PromptMessage = "Por favor completa todos los campos obligatorios."

// Message is a contact form submission. Subject is optional.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidationError lists the fields that prevented a submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid contact message: " + strings.Join(e.Fields, ", ")
}

// Validate checks that name, email and message are present and that the email
// address parses.
func Validate(m Message) error {
	var fields []string
	if strings.TrimSpace(m.Name) == "" {
		fields = append(fields, "name")
	}
	if email := strings.TrimSpace(m.Email); email == "" {
		fields = append(fields, "email")
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(m.Message) == "" {
		fields = append(fields, "message")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Acknowledgement returns the confirmation shown to the sender.
func Acknowledgement(m Message) string {
	return fmt.Sprintf("Gracias %s! Tu mensaje ha sido enviado. Te responderemos a %s pronto.",
		strings.TrimSpace(m.Name), strings.TrimSpace(m.Email))
}

// Receipt confirms an accepted message.
type Receipt struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// Desk accepts contact messages. Nothing is stored; accepted messages are
// logged under their receipt ID.
type Desk struct {
	logger *zap.Logger
}

// NewDesk returns a Desk logging to logger.
func NewDesk(logger *zap.Logger) *Desk {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Desk{logger: logger}
}

// Submit validates m and returns a receipt carrying the acknowledgement text.
func (d *Desk) Submit(m Message) (Receipt, error) {
	if err := Validate(m); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{ID: uuid.New(), Message: Acknowledgement(m)}
	d.logger.Info("contact message received",
		zap.String("op", "contact.Submit"),
		zap.String("id", receipt.ID.String()),
		zap.String("name", strings.TrimSpace(m.Name)),
		zap.String("subject", strings.TrimSpace(m.Subject)),
		zap.Int("length", len(m.Message)),
	)
	return receipt, nil
}
