package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
)

// restockEmailTemplate renders the HTML body of a restock email.
var restockEmailTemplate = template.Must(template.New("restock").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>{{.ProductName}} is back in stock!</h2>
  {{if .ImageURL}}<p><img src="{{.ImageURL}}" alt="{{.ProductName}}" width="240"/></p>{{end}}
  <p>
    Price: <strong>{{.Price}}</strong><br/>
    Available: <strong>{{.Quantity}}</strong>
  </p>
  <p><a href="{{.ProductURL}}">Buy it now</a> before it sells out again.</p>
  <p style="color: #888; font-size: 12px;">
    You are receiving this because you subscribed to restock alerts for this product.
  </p>
</body>
</html>`))

// restockEmailData is the template context for restockEmailTemplate.
type restockEmailData struct {
	ProductName string
	ProductURL  string
	ImageURL    string
	Price       string
	Quantity    int
}

// EmailConfig holds SMTP connection settings for the email notifier.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier implements Notifier via SMTP.
type EmailNotifier struct {
	client *mail.Client
	from   string
}

// NewEmailNotifier creates an EmailNotifier connected to the configured
// SMTP server. Authentication is skipped when no username is set, which
// supports local relays and test servers.
func NewEmailNotifier(cfg EmailConfig) (*EmailNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &EmailNotifier{client: client, from: cfg.From}, nil
}

// SendRestock sends a restock email to the subscriber's address.
func (e *EmailNotifier) SendRestock(ctx context.Context, r *RestockPayload) error {
	body, err := renderRestockEmail(r)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(e.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(r.Email); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Back in stock: %s", r.ProductName))
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := e.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending restock email: %w", err)
	}
	return nil
}

func renderRestockEmail(r *RestockPayload) (string, error) {
	var buf bytes.Buffer
	err := restockEmailTemplate.Execute(&buf, restockEmailData{
		ProductName: r.ProductName,
		ProductURL:  r.ProductURL,
		ImageURL:    r.ImageURL,
		Price:       r.FormattedPrice(),
		Quantity:    r.Quantity,
	})
	if err != nil {
		return "", fmt.Errorf("rendering restock email: %w", err)
	}
	return buf.String(), nil
}
