package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const smtpDialTimeout = 15 * time.Second

// SMTPEmailProviderAdapter implements EmailProvider port using SMTP
type SMTPEmailProviderAdapter struct {
	host     string
	port     int
	username string
	password string
	fromName string
	fromAddr string
	now      func() time.Time
}

// EmailProviderConfig represents SMTP configuration
type EmailProviderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	FromAddr string
}

// NewSMTPEmailProviderAdapter creates a new SMTP email provider adapter
func NewSMTPEmailProviderAdapter(config EmailProviderConfig) *SMTPEmailProviderAdapter {
	return &SMTPEmailProviderAdapter{
		host:     config.Host,
		port:     config.Port,
		username: config.Username,
		password: config.Password,
		fromName: config.FromName,
		fromAddr: config.FromAddr,
		now:      time.Now,
	}
}

// SendEmail delivers one message, upgrading to TLS when the server offers STARTTLS
func (p *SMTPEmailProviderAdapter) SendEmail(ctx context.Context, params ports.EmailParams) error {
	if params.To == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if params.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if params.Body == "" {
		return errors.NewValidationError("email body cannot be empty")
	}

	addr := net.JoinHostPort(p.host, strconv.Itoa(p.port))
	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.NewEmailError("failed to connect to SMTP server", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		_ = conn.Close()
		return errors.NewEmailError("failed to start SMTP session", err)
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
			return errors.NewEmailError("failed to establish secure TLS connection", err)
		}
	}

	if p.username != "" && p.password != "" {
		if err := client.Auth(smtp.PlainAuth("", p.username, p.password, p.host)); err != nil {
			return errors.NewEmailError("failed to authenticate", err)
		}
	}

	if err := client.Mail(p.fromAddr); err != nil {
		return errors.NewEmailError("failed to set sender", err)
	}
	if err := client.Rcpt(params.To); err != nil {
		return errors.NewEmailError("failed to set recipient", err)
	}

	writer, err := client.Data()
	if err != nil {
		return errors.NewEmailError("failed to get data writer", err)
	}
	if _, err := writer.Write([]byte(p.buildMessage(params))); err != nil {
		_ = writer.Close()
		return errors.NewEmailError("failed to write message", err)
	}
	if err := writer.Close(); err != nil {
		return errors.NewEmailError("server rejected message", err)
	}

	return client.Quit()
}

// ValidateConfiguration validates the email provider configuration
func (p *SMTPEmailProviderAdapter) ValidateConfiguration() error {
	if p.host == "" {
		return errors.NewConfigurationError("SMTP host cannot be empty", nil)
	}
	if p.port < 1 || p.port > 65535 {
		return errors.NewConfigurationError("SMTP port must be between 1 and 65535", nil)
	}
	if p.fromAddr == "" {
		return errors.NewConfigurationError("from address cannot be empty", nil)
	}
	if p.fromName == "" {
		return errors.NewConfigurationError("from name cannot be empty", nil)
	}
	return nil
}

func (p *SMTPEmailProviderAdapter) buildMessage(params ports.EmailParams) string {
	contentType := "text/plain"
	if params.IsHTML {
		contentType = "text/html"
	}

	domain := p.fromAddr
	if at := strings.LastIndex(domain, "@"); at >= 0 {
		domain = domain[at+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", p.fromName), p.fromAddr)
	fmt.Fprintf(&b, "To: %s\r\n", params.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", params.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", p.now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), domain)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(params.Body)

	return b.String()
}
