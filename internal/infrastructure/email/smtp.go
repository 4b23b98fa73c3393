package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/config"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Deduplicator suppresses repeat alerts for the same carton.
type Deduplicator interface {
	TryAcquire(ctx context.Context, cartonID uint) (bool, error)
}

// LowStockNotifier e-mails the configured recipients when cartons run low.
type LowStockNotifier struct {
	cfg    config.EmailConfig
	sender messageSender
	dedup  Deduplicator
	logger logger.Interface
}

// NewLowStockNotifier returns a notifier; dedup may be nil.
func NewLowStockNotifier(cfg config.EmailConfig, dedup Deduplicator, log logger.Interface) *LowStockNotifier {
	return &LowStockNotifier{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		dedup:  dedup,
		logger: log,
	}
}

// NotifyLowStock sends one message listing every carton not in cooldown.
func (n *LowStockNotifier) NotifyLowStock(ctx context.Context, cartons []*carton.Carton) error {
	if !n.cfg.Enabled || len(n.cfg.AlertRecipients) == 0 || len(cartons) == 0 {
		return nil
	}

	pending := make([]*carton.Carton, 0, len(cartons))
	for _, c := range cartons {
		if n.dedup != nil {
			ok, err := n.dedup.TryAcquire(ctx, c.ID())
			if err != nil {
				n.logger.Warnw("alert dedup unavailable, sending anyway", "carton_id", c.ID(), "error", err)
			} else if !ok {
				continue
			}
		}
		pending = append(pending, c)
	}
	if len(pending) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Low stock: %d carton(s) need restocking", len(pending))
	if err := n.send(subject, lowStockHTML(pending), lowStockPlain(pending)); err != nil {
		return err
	}

	n.logger.Infow("low stock alert sent", "cartons", len(pending), "recipients", len(n.cfg.AlertRecipients))
	return nil
}

func (n *LowStockNotifier) send(subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.cfg.AlertRecipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send low stock alert: %w", err)
	}
	return nil
}

func lowStockHTML(cartons []*carton.Carton) string {
	var b strings.Builder
	b.WriteString("<html><body><h2>Low stock</h2><table border=\"1\" cellpadding=\"4\">")
	b.WriteString("<tr><th>Carton</th><th>Company</th><th>Size (mm)</th><th>Available</th><th>Total</th></tr>")
	for _, c := range cartons {
		fmt.Fprintf(&b, "\n<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td></tr>",
			html.EscapeString(c.Name()),
			html.EscapeString(c.CompanyName()),
			c.Box().String(),
			c.AvailableQuantity(),
			c.TotalQuantity())
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

func lowStockPlain(cartons []*carton.Carton) string {
	var b strings.Builder
	b.WriteString("The following cartons are running low:\n\n")
	for _, c := range cartons {
		fmt.Fprintf(&b, "- %s (%s) %s: %d of %d available\n",
			c.Name(), c.CompanyName(), c.Box().String(), c.AvailableQuantity(), c.TotalQuantity())
	}
	return b.String()
}
