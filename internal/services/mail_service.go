// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"sort"
	"strings"
	"time"
)

// SMTPConfig holds the SMTP + branding config for outgoing notifications.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@agency.tw"
	FromName   string // display name
	Inbox      string // agency inbox that receives submissions
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail when STARTTLS is unavailable

	AppName string
}

// IMailService groups both delivery collaborators behind one SMTP-backed
// implementation.
type IMailService interface {
	BookingDeliverer
	ContactDeliverer
}

// smtpMailService delivers bookings and contact messages to the agency
// inbox over SMTP. It implements both delivery collaborator interfaces.
type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl, err := template.New("notifyHTML").Parse(notificationHTMLTemplate)
	if err != nil {
		return nil, err
	}
	textTpl, err := template.New("notifyText").Parse(notificationTextTemplate)
	if err != nil {
		return nil, err
	}

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

// ------------------- Delivery collaborators -------------------

func (s *smtpMailService) DeliverBooking(ctx context.Context, payload BookingPayload) error {
	fields := []notificationField{
		{"Name", payload.Name},
		{"Phone", payload.Phone},
		{"LINE / WhatsApp", payload.MessengerID},
		{"Email", payload.Email},
		{"Age group", payload.AgeGroup},
		{"Budget", payload.BudgetBucket},
		{"Remarks", payload.Remarks},
	}
	for _, category := range sortedKeys(payload.QuizAnswers) {
		fields = append(fields, notificationField{"Quiz · " + category, payload.QuizAnswers[category]})
	}

	subject := fmt.Sprintf("New booking request from %s", payload.Name)
	return s.sendNotification(subject, "Booking request", fields, payload.SubmittedAt)
}

func (s *smtpMailService) DeliverContact(ctx context.Context, msg ContactMessage) error {
	fields := []notificationField{
		{"Name", msg.Name},
		{"Email", msg.Email},
		{"Phone", msg.Phone},
		{"Message", msg.Message},
	}

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	return s.sendNotification(subject, "Contact message", fields, msg.SubmittedAt)
}

// ------------------- Rendering -------------------

type notificationField struct {
	Label string
	Value string
}

type notificationData struct {
	Title       string
	Fields      []notificationField
	AppName     string
	SubmittedAt string
	Year        int
}

const notificationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background:#f8fafc;color:#0f172a;padding:24px;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:24px;border:1px solid #e2e8f0;">
    <h2 style="margin:0 0 4px;">{{.Title}}</h2>
    <p style="margin:0 0 16px;color:#64748b;">Submitted at {{.SubmittedAt}}</p>
    <table style="width:100%;border-collapse:collapse;">
      {{range .Fields}}{{if .Value}}
      <tr>
        <td style="padding:8px 12px 8px 0;color:#64748b;white-space:nowrap;vertical-align:top;">{{.Label}}</td>
        <td style="padding:8px 0;">{{.Value}}</td>
      </tr>
      {{end}}{{end}}
    </table>
    <p style="margin:24px 0 0;color:#94a3b8;font-size:12px;">© {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const notificationTextTemplate = `{{.Title}} ({{.SubmittedAt}})

{{range .Fields}}{{if .Value}}{{.Label}}: {{.Value}}
{{end}}{{end}}
— {{.AppName}}
`

func (s *smtpMailService) sendNotification(subject, title string, fields []notificationField, submittedAt time.Time) error {
	data := notificationData{
		Title:       title,
		Fields:      fields,
		AppName:     s.cfg.AppName,
		SubmittedAt: submittedAt.Format(time.RFC3339),
		Year:        submittedAt.Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(s.cfg.Inbox, subject, hb.String(), tb.String())
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.push(c, to, auth, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.push(c, to, auth, msg.Bytes())
}

func (s *smtpMailService) push(c *smtp.Client, to string, auth smtp.Auth, body []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(body); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
