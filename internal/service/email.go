package service

import (
	"context"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/mail"
)

// EmailService 站点联系表单：发给固定收件人
type EmailService struct{ sender mail.Sender }

func NewEmailService(s mail.Sender) *EmailService { return &EmailService{sender: s} }

func (s *EmailService) Send(ctx context.Context, subject, html string) error {
	subject = trim(subject)
	if subject == "" || trim(html) == "" {
		return apperr.Validation("Subject and message are required")
	}
	if err := s.sender.Send(ctx, mail.Message{Subject: subject, HTML: html}); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
