package libs

import (
	"bytes"
	"context"
	"html/template"

	"github.com/go-faster/errors"
	"gopkg.in/gomail.v2"

	"kadima-pos/config"
	"kadima-pos/models"
)

var ErrSMTPNotConfigured = errors.New("SMTP configuration missing")

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        table { width: 100%; border-collapse: collapse; }
        td { padding: 6px 0; border-bottom: 1px solid #eee; }
        .num { text-align: right; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>{{.Store.Name}}</h2>
        <p>{{.Store.Address}}</p>
        <p>Receipt <strong>{{.Tx.ID}}</strong></p>
        <table>
            {{range .Tx.Items}}
            <tr><td>{{.Name}} x {{.Quantity}}</td><td class="num">{{.LineTotal.StringFixed 2}}</td></tr>
            {{end}}
            <tr><td>Subtotal</td><td class="num">{{.Tx.Subtotal.StringFixed 2}}</td></tr>
            <tr><td>Tax</td><td class="num">{{.Tx.Tax.StringFixed 2}}</td></tr>
            <tr><td><strong>Total</strong></td><td class="num"><strong>{{.Tx.Total.StringFixed 2}}</strong></td></tr>
        </table>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>`))

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, ErrSMTPNotConfigured
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func RenderReceipt(tx *models.Transaction, store *models.Store) (string, error) {
	var buf bytes.Buffer
	err := receiptTemplate.Execute(&buf, struct {
		Tx    *models.Transaction
		Store *models.Store
	}{tx, store})
	if err != nil {
		return "", errors.Wrap(err, "render receipt")
	}
	return buf.String(), nil
}

// SendReceipt mails the receipt of a paid transaction to its customer email.
func (m *Mailer) SendReceipt(ctx context.Context, tx *models.Transaction, store *models.Store) error {
	if tx.CustomerEmail == nil || *tx.CustomerEmail == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderReceipt(tx, store)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", *tx.CustomerEmail)
	msg.SetHeader("Subject", "Your receipt from "+store.Name)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send receipt")
	}
	return nil
}
