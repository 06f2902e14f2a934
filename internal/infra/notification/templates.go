package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/shared"
)

var ErrUnknownKind = errs.New("unknown notification kind")

type message struct {
	subject *template.Template
	body    *template.Template
}

var funcs = template.FuncMap{
	"money": func(cents int64, currency string) string {
		sign := ""
		if cents < 0 {
			sign, cents = "-", -cents
		}
		return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, strings.ToUpper(currency))
	},
}

func mustMessage(name, subject, body string) message {
	return message{
		subject: template.Must(template.New(name + ".subject").Funcs(funcs).Parse(subject)),
		body:    template.Must(template.New(name + ".body").Funcs(funcs).Parse(body)),
	}
}

var messages = map[string]message{
	shared.NotificationKindOrderCreated: mustMessage("order_created",
		"Order {{.OrderNumber}} received",
		`Thank you for your order.

Order number: {{.OrderNumber}}
Total: {{money .TotalCents .Currency}}

We will let you know once payment is confirmed.
`),
	shared.NotificationKindReceipt: mustMessage("payment_receipt",
		"Payment received for order {{.OrderNumber}}",
		`Your payment has been received.

Order number: {{.OrderNumber}}
Amount paid: {{money .TotalCents .Currency}}

Your order is now being prepared.
`),
}

type Rendered struct {
	To      string
	Subject string
	Body    string
}

// Render decodes a job payload and fills the template for its kind.
func Render(job shared.NotificationJob) (Rendered, error) {
	msg, ok := messages[job.Kind]
	if !ok {
		return Rendered{}, errs.Wrapf(ErrUnknownKind, "kind %q", job.Kind)
	}

	var p shared.NotificationPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return Rendered{}, errs.Wrap(err, "decode notification payload")
	}

	var subject, body bytes.Buffer
	if err := msg.subject.Execute(&subject, p); err != nil {
		return Rendered{}, errs.Wrap(err, "render subject")
	}
	if err := msg.body.Execute(&body, p); err != nil {
		return Rendered{}, errs.Wrap(err, "render body")
	}
	return Rendered{To: p.Email, Subject: subject.String(), Body: body.String()}, nil
}
