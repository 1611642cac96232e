package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const (
	DefaultResendURL = "https://api.resend.com/emails"
	DefaultFrom      = "Route Maker <noreply@routemaker.app>"
)

var ErrMissingAPIKey = errors.New("notify: resend api key is required")

// ResendMailer posts mail to the Resend HTTP API.
type ResendMailer struct {
	client *http.Client
	url    string
	apiKey string
	from   string
}

// ResendOption configures ResendMailer.
type ResendOption func(*ResendMailer)

// WithHTTPClient sets the HTTP client (default: 10s timeout).
func WithHTTPClient(c *http.Client) ResendOption {
	return func(m *ResendMailer) { m.client = c }
}

// WithURL points the mailer at another endpoint, e.g. a test server.
func WithURL(url string) ResendOption {
	return func(m *ResendMailer) { m.url = url }
}

// WithFrom sets the sender address.
func WithFrom(from string) ResendOption {
	return func(m *ResendMailer) {
		if from != "" {
			m.from = from
		}
	}
}

func NewResendMailer(apiKey string, opts ...ResendOption) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	m := &ResendMailer{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    DefaultResendURL,
		apiKey: apiKey,
		from:   DefaultFrom,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

func (m *ResendMailer) SendInvitation(ctx context.Context, msg InvitationEmail) error {
	html, err := renderInvitationHTML(msg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(resendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: invitationSubject(msg),
		HTML:    html,
		Text:    renderInvitationText(msg),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SendError{Status: resp.StatusCode, Body: string(detail)}
	}
	return nil
}

// SendError is a non-2xx answer from the mail provider.
type SendError struct {
	Status int
	Body   string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("notify: mail provider returned %d: %s", e.Status, e.Body)
}

func organizationLabel(name string) string {
	if name == "" {
		return "the organization"
	}
	return name
}

func invitationSubject(msg InvitationEmail) string {
	return "You've been invited to join " + organizationLabel(msg.OrganizationName)
}

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>You've been invited</title></head>
<body style="font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;color:#333;max-width:600px;margin:0 auto;padding:20px">
  <h1 style="font-size:24px">You've been invited to join {{.Organization}}</h1>
  <p>You have been invited to join <strong>{{.Organization}}</strong> on Route Maker as {{.Role}}.</p>
  <p style="text-align:center;margin:30px 0">
    <a href="{{.URL}}" style="background:#0070f3;color:#fff;text-decoration:none;padding:12px 30px;border-radius:6px">Accept Invitation</a>
  </p>
  <p>Or copy this link into your browser:<br><a href="{{.URL}}">{{.URL}}</a></p>
  <p style="font-size:12px;color:#666">This invitation expires on {{.Expires}}. If you weren't expecting it you can ignore this email.</p>
</body>
</html>`))

type invitationView struct {
	Organization string
	Role         string
	URL          string
	Expires      string
}

func viewOf(msg InvitationEmail) invitationView {
	role := msg.Role
	if role == "" {
		role = "member"
	}
	return invitationView{
		Organization: organizationLabel(msg.OrganizationName),
		Role:         article(role) + " " + role,
		URL:          msg.InviteURL,
		Expires:      msg.ExpiresAt.UTC().Format("January 2, 2006"),
	}
}

func article(word string) string {
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

func renderInvitationHTML(msg InvitationEmail) (string, error) {
	var buf bytes.Buffer
	if err := invitationTemplate.Execute(&buf, viewOf(msg)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderInvitationText(msg InvitationEmail) string {
	v := viewOf(msg)
	return fmt.Sprintf(
		"You've been invited to join %s on Route Maker as %s.\n\nAccept the invitation: %s\n\nThis invitation expires on %s.\n",
		v.Organization, v.Role, v.URL, v.Expires,
	)
}

var _ Mailer = (*ResendMailer)(nil)
