package smtp

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/ManyRagDev/brincar-educando-2/internal/config"
	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
	"github.com/ManyRagDev/brincar-educando-2/internal/pkg/id"
)

// Mailer delivers rendered messages. It must be safe for concurrent use;
// each Send dials its own connection.
type Mailer interface {
	// Send delivers msg and returns the Message-ID assigned to it.
	Send(ctx context.Context, msg domain.RenderedMessage) (string, error)
}

type mailer struct {
	host       string
	port       int
	from       string
	fromName   string
	username   string
	password   string
	encryption string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		from:       cfg.SMTPFrom,
		fromName:   cfg.SMTPFromName,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		encryption: cfg.SMTPEncryption,
	}
}

func (m *mailer) Send(ctx context.Context, msg domain.RenderedMessage) (string, error) {
	mm := mail.NewMsg()
	if err := mm.FromFormat(m.fromName, m.from); err != nil {
		return "", fmt.Errorf("invalid from address: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	messageID := newMessageID(m.from)
	mm.SetMessageIDWithValue(messageID)
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(tlsPolicyFromEncryption(m.encryption)),
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	c, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, mm); err != nil {
		return "", err
	}
	return messageID, nil
}

// newMessageID builds a ULID-based Message-ID scoped to the sender's domain.
func newMessageID(from string) string {
	host := from
	if i := strings.LastIndex(from, "@"); i >= 0 {
		host = from[i+1:]
	}
	return fmt.Sprintf("%s@%s", strings.ToLower(id.New()), host)
}

// tlsPolicyFromEncryption converts the encryption string to a go-mail TLSPolicy.
func tlsPolicyFromEncryption(enc string) mail.TLSPolicy {
	switch enc {
	case "ssl_tls":
		return mail.TLSMandatory
	case "starttls":
		return mail.TLSOpportunistic
	default:
		return mail.NoTLS
	}
}
