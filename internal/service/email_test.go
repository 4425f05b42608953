package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/mail"
)

type outbox struct {
	sent []mail.Message
	err  error
}

func (o *outbox) Send(_ context.Context, m mail.Message) error {
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, m)
	return nil
}

func TestEmailSend(t *testing.T) {
	box := &outbox{}
	svc := NewEmailService(box)

	require.NoError(t, svc.Send(context.Background(), " Hello ", "<p>hi</p>"))
	require.Len(t, box.sent, 1)
	assert.Equal(t, "Hello", box.sent[0].Subject)

	err := svc.Send(context.Background(), "", "<p>hi</p>")
	requireKind(t, err, apperr.KindValidation, "")

	box.err = mail.ErrNotConfigured
	err = svc.Send(context.Background(), "s", "m")
	requireKind(t, err, apperr.KindInternal, apperr.MsgInternal)
}
