package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/logger"
)

// Environment discriminates dev from production mail behavior. It is passed
// in explicitly at construction; non-production senders get a testing subject
// so staging traffic is never mistaken for real notifications.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// SupportingDocument is a named document URL attached to a registration.
type SupportingDocument struct {
	Filename           string `json:"filename"`
	SupportingDocument string `json:"supporting_document"`
}

// LabRegistration is the mail context for a new lab registering on the network.
type LabRegistration struct {
	Email          string
	LabName        string
	PhoneNumber    string
	Country        string
	State          string
	City           string
	Address        string
	ProfileImage   string
	Certifications []SupportingDocument
	Services       []SupportingDocument
}

// CustomerStakingRequestService is the mail context for a customer staking a
// request for a service that is not offered in their region yet.
type CustomerStakingRequestService struct {
	CustomerID  string
	ServiceName string
	Country     string
	State       string
	City        string
}

// MailConfig holds SMTP transport configuration
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	Environment Environment
}

// Mailer sends operational emails adjacent to the notification pipeline.
//
//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Mailer=MockMailer
type Mailer interface {
	// SendLabRegistrationEmail notifies operations of a new lab registration.
	// Returns false if sending failed; failures are logged, not propagated.
	SendLabRegistrationEmail(ctx context.Context, to []string, reg LabRegistration) bool
	// SendCustomerStakingRequestServiceEmail notifies operations of a staked
	// service request. Same failure contract as SendLabRegistrationEmail.
	SendCustomerStakingRequestServiceEmail(ctx context.Context, to []string, req CustomerStakingRequestService) bool
}

var labRegistrationTemplate = template.Must(template.New("lab-register").Parse(`
<h2>New Lab Register - {{.LabName}}</h2>
<p>Email: {{.Email}}</p>
<p>Phone: {{.PhoneNumber}}</p>
<p>Location: {{.City}}, {{.State}}, {{.Country}}</p>
<p>Address: {{.Address}}</p>
{{if .Certifications}}<h3>Certifications</h3><ul>{{range .Certifications}}<li><a href="{{.SupportingDocument}}">{{.Filename}}</a></li>{{end}}</ul>{{end}}
{{if .Services}}<h3>Services</h3><ul>{{range .Services}}<li><a href="{{.SupportingDocument}}">{{.Filename}}</a></li>{{end}}</ul>{{end}}
`))

var customerStakingRequestTemplate = template.Must(template.New("customer-staking-request-service").Parse(`
<h2>New Service Request - {{.ServiceName}}</h2>
<p>Customer: {{.CustomerID}}</p>
<p>Location: {{.City}}, {{.State}}, {{.Country}}</p>
`))

// smtpSender is the transport seam under the mailer. *mail.Client satisfies it.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailer struct {
	client smtpSender
	from   string
	env    Environment
}

// NewMailer creates an SMTP-backed mailer
func NewMailer(cfg MailConfig) (Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		env:    cfg.Environment,
	}, nil
}

// SendLabRegistrationEmail notifies operations of a new lab registration
func (m *smtpMailer) SendLabRegistrationEmail(ctx context.Context, to []string, reg LabRegistration) bool {
	subject := fmt.Sprintf("New Lab Register - %s - %s, %s, %s", reg.LabName, reg.City, reg.State, reg.Country)
	if m.env != EnvironmentProduction {
		subject = "Testing New Lab Register Email"
	}

	return m.send(ctx, to, subject, labRegistrationTemplate, reg)
}

// SendCustomerStakingRequestServiceEmail notifies operations of a staked service request
func (m *smtpMailer) SendCustomerStakingRequestServiceEmail(ctx context.Context, to []string, req CustomerStakingRequestService) bool {
	subject := fmt.Sprintf("New Service Request - %s - %s, %s, %s", req.ServiceName, req.City, req.State, req.Country)
	if m.env != EnvironmentProduction {
		subject = "Testing New Service Request Email"
	}

	return m.send(ctx, to, subject, customerStakingRequestTemplate, req)
}

func (m *smtpMailer) send(ctx context.Context, to []string, subject string, tmpl *template.Template, data any) bool {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to render mail template"), zap.String("subject", subject))
		return false
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Invalid mail sender"), zap.String("from", m.from))
		return false
	}
	if err := msg.To(to...); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Invalid mail recipients"), zap.Strings("to", to))
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Send email failed"), zap.String("subject", subject))
		return false
	}

	return true
}
