package mailer

import (
	"bytes"
	"text/template"

	"github.com/ManyRagDev/brincar-educando-2/internal/domain"
)

// Subjects for the two templates. The generic subject can be overridden by
// the upstream subject hint; the welcome subject always wins when a
// confirmation URL is present.
const (
	welcomeSubject        = "Seja bem-vindo ao Brincar Educando! 🎈"
	defaultGenericSubject = "Brincar Educando - Notificação"
)

// The templates intentionally use text/template: the confirmation URL must
// appear byte-exact in the rendered HTML (href and visible text), and
// contextual escaping would rewrite query separators inside it. All injected
// values come from the identity backend, not from end-user input.
var welcomeTmpl = template.Must(template.New("welcome").Parse(`<div style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #6366f1;">O brincar transforma!</h1>
  <p>Olá,</p>
  <p>Ficamos muito felizes em ter você conosco. Para começar sua jornada, confirme seu e-mail clicando no botão abaixo:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.ConfirmationURL}}" style="background-color: #6366f1; color: white; padding: 12px 24px; text-decoration: none; border-radius: 8px; font-weight: bold;">Confirmar meu E-mail</a>
  </div>
  <p style="font-size: 12px; color: #666;">Se o botão não funcionar, copie e cole este link: <br> {{.ConfirmationURL}}</p>
  <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="font-size: 14px;">Equipe Brincar Educando</p>
</div>
`))

var genericTmpl = template.Must(template.New("generic").Parse(`<p>Olá, este é seu código/link de acesso: <strong>{{.Value}}</strong></p>
`))

// Render builds the outbound message for an accepted event. It is pure and
// does not fail for well-formed input: when neither a confirmation URL nor an
// OTP is present, the generic template renders with an empty placeholder.
//
// Selection priority: a confirmation URL always selects the welcome template,
// regardless of the reported event kind — the identity backend classifies
// events unreliably but includes a confirmation URL whenever one exists.
func Render(event domain.NotificationEvent) (domain.RenderedMessage, error) {
	if event.ConfirmationURL != "" {
		html, err := execute(welcomeTmpl, struct{ ConfirmationURL string }{event.ConfirmationURL})
		if err != nil {
			return domain.RenderedMessage{}, err
		}
		return domain.RenderedMessage{
			To:       event.UserEmail,
			Subject:  welcomeSubject,
			HTMLBody: html,
		}, nil
	}

	// Fallback for other triggers (recovery, OTP logins, etc.).
	value := event.OTPCode
	if value == "" {
		value = event.ConfirmationURL
	}
	html, err := execute(genericTmpl, struct{ Value string }{value})
	if err != nil {
		return domain.RenderedMessage{}, err
	}

	subject := event.RawSubjectHint
	if subject == "" {
		subject = defaultGenericSubject
	}
	return domain.RenderedMessage{
		To:       event.UserEmail,
		Subject:  subject,
		HTMLBody: html,
	}, nil
}

func execute(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
