package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"

	"github.com/sergiofrancodev/ecommerce-academlo/models"
)

// EmailSender is what the controllers depend on; tests swap in a fake.
type EmailSender interface {
	SendWelcome(ctx context.Context, to, username string) error
	SendOrderConfirmation(ctx context.Context, to string, items []models.CartItem, total decimal.Decimal) error
}

// SendGridSender sends transactional mail through SendGrid.
type SendGridSender struct {
	apiKey string
	from   string
}

func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from}
}

func (s *SendGridSender) SendWelcome(ctx context.Context, to, username string) error {
	body := fmt.Sprintf("Welcome, %s! Your account is ready.", username)
	return s.send(ctx, to, "Welcome to the store", body)
}

func (s *SendGridSender) SendOrderConfirmation(ctx context.Context, to string, items []models.CartItem, total decimal.Decimal) error {
	var b strings.Builder
	b.WriteString("Thanks for your purchase!\n\n")
	for _, item := range items {
		title := "unknown product"
		price := decimal.Zero
		if item.Product != nil {
			title = item.Product.Title
			price = item.Product.Price
		}
		fmt.Fprintf(&b, "%s x%d — %s each\n", title, item.Quantity, price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", total.StringFixed(2))

	return s.send(ctx, to, "Your order confirmation", b.String())
}

func (s *SendGridSender) send(_ context.Context, to, subject, body string) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("Store", s.from),
		subject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	response, err := sendgrid.NewSendClient(s.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}
	return nil
}
