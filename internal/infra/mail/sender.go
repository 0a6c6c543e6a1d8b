package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
)

// EmailSender is the delivery edge of the notification dispatcher:
// the queue worker hands it events, it turns them into mail. Events
// without a recipient address are dropped silently.
type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminInbox string
}

func NewEmailSender(host string, port int, user, password, from, adminInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		AdminInbox: adminInbox,
	}
}

var (
	newSubmissionTmpl = template.Must(template.New("new_submission").Parse(
		`<p>A new listing is waiting for review:</p><p><b>{{.ListingTitle}}</b> ({{.ListingID}})</p>`))
	publishedTmpl = template.Must(template.New("published").Parse(
		`<p>Good news! Your listing <b>{{.ListingTitle}}</b> is now live.</p>`))
	rejectedTmpl = template.Must(template.New("rejected").Parse(
		`<p>Your listing <b>{{.ListingTitle}}</b> was not approved.</p>{{if .Comment}}<p>Reviewer note: {{.Comment}}</p>{{end}}`))
	newInterestTmpl = template.Must(template.New("new_interest").Parse(
		`<p><b>{{.BuyerName}}</b> ({{.BuyerEmail}}) is interested in your listing <b>{{.ListingTitle}}</b>.</p>`))
)

func (s *EmailSender) SendNewSubmission(evt queue.Event) error {
	return s.send(s.AdminInbox, "New listing awaiting review", newSubmissionTmpl, evt)
}

func (s *EmailSender) SendListingPublished(evt queue.Event) error {
	return s.send(evt.OwnerEmail, fmt.Sprintf("Your listing %q is live", evt.ListingTitle), publishedTmpl, evt)
}

func (s *EmailSender) SendListingRejected(evt queue.Event) error {
	return s.send(evt.OwnerEmail, fmt.Sprintf("Your listing %q was rejected", evt.ListingTitle), rejectedTmpl, evt)
}

func (s *EmailSender) SendNewInterest(evt queue.Event) error {
	return s.send(evt.OwnerEmail, fmt.Sprintf("New interest in %q", evt.ListingTitle), newInterestTmpl, evt)
}

func (s *EmailSender) send(to, subject string, tmpl *template.Template, evt queue.Event) error {
	if to == "" {
		// No address on file; nothing to deliver.
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, evt); err != nil {
		return fmt.Errorf("render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
