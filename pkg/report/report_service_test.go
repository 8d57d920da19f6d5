package report_test

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/pkg/report"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPending []domain.PendingItem

func (s staticPending) Pending(ctx context.Context) []domain.PendingItem {
	return s
}

type recordingMailer struct {
	to, subject, body string
	err               error
}

func (m *recordingMailer) SendMail(toEmail string, subject string, body string) error {
	m.to, m.subject, m.body = toEmail, subject, body
	return m.err
}

func TestSendShoppingList(t *testing.T) {
	mailer := &recordingMailer{}
	service := report.NewReportService(staticPending{
		{Category: domain.CategoryFood, ProductName: "Rice", Description: "5kg bag", Quantity: 3},
		{Category: domain.CategoryCleaning, ProductName: "Mop", Description: "<blue>", Quantity: 1, Supermarket: "MartX"},
	}, mailer)

	sent, err := service.SendShoppingList(context.Background(), domain.SendShoppingListRequest{Email: "home@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, "home@example.com", mailer.to)
	assert.Contains(t, mailer.body, "<td>Rice</td>")
	assert.Contains(t, mailer.body, "<td>MartX</td>")
	assert.Contains(t, mailer.body, "&lt;blue&gt;")
}

func TestSendShoppingListNothingPending(t *testing.T) {
	mailer := &recordingMailer{}
	service := report.NewReportService(staticPending{}, mailer)

	_, err := service.SendShoppingList(context.Background(), domain.SendShoppingListRequest{Email: "home@example.com"})
	assert.ErrorIs(t, err, domain.ErrNothingPending)
	assert.Empty(t, mailer.to)
}

func TestSendShoppingListMailFailure(t *testing.T) {
	smtpErr := errors.New("connection refused")
	service := report.NewReportService(staticPending{{ProductName: "Rice", Quantity: 1}}, &recordingMailer{err: smtpErr})

	_, err := service.SendShoppingList(context.Background(), domain.SendShoppingListRequest{Email: "home@example.com"})
	assert.ErrorIs(t, err, smtpErr)
}
