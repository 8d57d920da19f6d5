package report

import (
	"Go-Shopping-Inventory/domain"
	"Go-Shopping-Inventory/internal/utils/mailing"
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2/log"
)

const subject = "Shopping list"

var bodyTemplate = template.Must(template.New("shopping-list").Parse(`<h2>Shopping list</h2>
<table>
<tr><th>Category</th><th>Product</th><th>Description</th><th>Quantity</th><th>Supermarket</th></tr>
{{- range .}}
<tr><td>{{.Category}}</td><td>{{.ProductName}}</td><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.Supermarket}}</td></tr>
{{- end}}
</table>
`))

type (
	// PendingSource yields the purchases that are not done yet.
	PendingSource interface {
		Pending(ctx context.Context) []domain.PendingItem
	}

	ReportService interface {
		SendShoppingList(ctx context.Context, req domain.SendShoppingListRequest) (int, error)
	}

	reportService struct {
		pending PendingSource
		mailer  mailing.Mailer
	}
)

func NewReportService(pending PendingSource, mailer mailing.Mailer) ReportService {
	return &reportService{
		pending: pending,
		mailer:  mailer,
	}
}

// SendShoppingList mails the pending items and returns how many were sent.
func (s *reportService) SendShoppingList(ctx context.Context, req domain.SendShoppingListRequest) (int, error) {
	items := s.pending.Pending(ctx)
	if len(items) == 0 {
		return 0, domain.ErrNothingPending
	}

	body, err := RenderShoppingList(items)
	if err != nil {
		return 0, err
	}

	if err := s.mailer.SendMail(req.Email, subject, body); err != nil {
		log.Errorw("failed to mail shopping list", "to", req.Email, "error", err)
		return 0, fmt.Errorf("send shopping list: %w", err)
	}

	log.Infow("shopping list mailed", "to", req.Email, "items", len(items))
	return len(items), nil
}

func RenderShoppingList(items []domain.PendingItem) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, items); err != nil {
		return "", fmt.Errorf("render shopping list: %w", err)
	}
	return buf.String(), nil
}
