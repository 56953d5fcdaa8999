package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"portfolio/internal/captcha"
	"portfolio/internal/mail"
	"portfolio/internal/metrics"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContactInput is a contact form submission as received from a visitor.
type ContactInput struct {
	Name         string `json:"name" form:"name" validate:"required,max=250"`
	Email        string `json:"email" form:"email" validate:"required,email,max=250"`
	Phone        string `json:"phone" form:"phone" validate:"omitempty,e164"`
	Subject      string `json:"subject" form:"subject" validate:"max=250"`
	Message      string `json:"message" form:"message" validate:"required,max=2000"`
	CaptchaToken string `json:"captcha" form:"g-recaptcha-response"`
}

// ContactService defines the contact form use cases.
type ContactService interface {
	// Submit validates, verifies the captcha, stores the message and notifies the
	// administrator. When the notification has a malformed header the stored
	// message is returned together with ErrBadHeader.
	Submit(ctx context.Context, in ContactInput, remoteIP string) (*model.ContactMessage, error)
	List(ctx context.Context, limit, offset int) (*ListResult[model.ContactMessage], error)
	Get(ctx context.Context, id string) (*model.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	repo       repository.ContactRepository
	verifier   captcha.Verifier
	mailer     mail.Mailer
	adminEmail string
	metrics    *metrics.Domain
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository, verifier captcha.Verifier, mailer mail.Mailer, adminEmail string, m *metrics.Domain) ContactService {
	return &contactService{repo: repo, verifier: verifier, mailer: mailer, adminEmail: adminEmail, metrics: m}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput, remoteIP string) (*model.ContactMessage, error) {
	in = normalizeContact(in)
	if err := validateStruct(in); err != nil {
		s.metrics.ContactSubmission("invalid")
		return nil, err
	}

	ok, err := s.verifier.Verify(ctx, in.CaptchaToken, remoteIP)
	if err != nil {
		s.metrics.ContactSubmission("error")
		return nil, fmt.Errorf("%w: %v", ErrCaptchaUnavailable, err)
	}
	if !ok {
		s.metrics.ContactSubmission("invalid")
		return nil, fieldError("captcha", "Captcha verification failed. Please try again.")
	}

	msg := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   optional(in.Phone),
		Subject: optional(in.Subject),
		Message: in.Message,
	}
	stored, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.metrics.ContactSubmission("error")
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	err = s.mailer.Send(ctx, mail.Message{
		From:    s.adminEmail,
		To:      []string{s.adminEmail},
		ReplyTo: in.Email,
		Subject: in.Subject,
		Body:    ContactBody(in),
	})
	switch {
	case errors.Is(err, mail.ErrBadHeader):
		slog.WarnContext(ctx, "contact notification rejected", "contact_id", stored.ID, "error", err)
		s.metrics.ContactSubmission("bad_header")
		return stored, ErrBadHeader
	case err != nil:
		s.metrics.ContactSubmission("error")
		return stored, fmt.Errorf("send notification: %w", err)
	}

	s.metrics.ContactSubmission("sent")
	return stored, nil
}

// ContactBody renders the plaintext notification sent to the administrator.
func ContactBody(in ContactInput) string {
	var b strings.Builder
	b.WriteString("You got a new message:\n\n")
	b.WriteString("Sender Info:\n")
	b.WriteString("\nSubject: " + in.Subject)
	b.WriteString("\nName: " + in.Name)
	b.WriteString("\nEmail: " + in.Email)
	b.WriteString("\nPhone number: " + in.Phone + "\n\n")
	b.WriteString(in.Message + "\n")
	return b.String()
}

var phoneReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

func normalizeContact(in ContactInput) ContactInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	in.Phone = phoneReplacer.Replace(strings.TrimSpace(in.Phone))
	if strings.HasPrefix(in.Phone, "00") {
		in.Phone = "+" + in.Phone[2:]
	}
	return in
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *contactService) List(ctx context.Context, limit, offset int) (*ListResult[model.ContactMessage], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.ContactMessage]{Items: res.Items, Total: res.Total}, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*model.ContactMessage, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return notFound(s.repo.Delete(ctx, id))
}
