package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock github.com/escanor68/turnosya-backend/pkg/mail Interface

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	TemplatePath string // Path to the templates directory
}

// BookingConfirmationData feeds the booking confirmation template.
type BookingConfirmationData struct {
	CustomerName     string
	BookingID        string
	Status           string
	BookingDate      string
	StartTime        string
	EndTime          string
	TotalAmount      string
	PaymentMethod    string
	ConfirmationDate string
}

type Service interface {
	SendPasswordResetEmail(to, name, token string) error
	SendBookingConfirmationEmail(to string, data BookingConfirmationData) error
}

type service struct {
	config                      Config
	passwordResetTemplate       *template.Template
	bookingConfirmationTemplate *template.Template
}

func New(config Config) Service {
	templatePath := config.TemplatePath
	if templatePath == "" {
		templatePath = "template"
	}

	return &service{
		config:                      config,
		passwordResetTemplate:       mustLoadTemplate(templatePath, "password_reset.html"),
		bookingConfirmationTemplate: mustLoadTemplate(templatePath, "booking_confirmation.html"),
	}
}

func mustLoadTemplate(dir, name string) *template.Template {
	tmpl, err := template.ParseFiles(filepath.Join(dir, name))
	if err != nil {
		panic(fmt.Sprintf("mail: failed to parse template %s: %v", name, err))
	}

	return tmpl
}

func (s *service) SendPasswordResetEmail(to, name, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)

	data := struct {
		Name     string
		ResetURL string
	}{
		Name:     name,
		ResetURL: resetURL,
	}

	body, err := render(s.passwordResetTemplate, data)
	if err != nil {
		return fmt.Errorf("mail: password reset template: %w", err)
	}

	return s.sendEmail(to, "Restablecé tu contraseña", body)
}

func (s *service) SendBookingConfirmationEmail(to string, data BookingConfirmationData) error {
	body, err := render(s.bookingConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("mail: booking confirmation template: %w", err)
	}

	return s.sendEmail(to, "Tu reserva está confirmada", body)
}

func render(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}

func (s *service) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	return d.DialAndSend(m)
}
