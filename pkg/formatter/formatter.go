// Package formatter renders repository revisions into chat messages.
package formatter

import (
	"html"
	"time"

	"github.com/aymerick/raymond"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

const emptyMessageBody = "[No description]"

// Formatter renders a revision with a date pattern and a handlebars message
// template. Placeholders available to the template are auth, date, rnum and
// body.
type Formatter struct {
	date     *datePattern
	template *raymond.Template
	loc      *time.Location
}

type Option func(*Formatter)

// WithLocation sets the time zone used to render revision dates. Default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(x *Formatter) {
		x.loc = loc
	}
}

// New validates the date pattern and compiles the message template.
func New(dateFormat, messageTemplate string, options ...Option) (*Formatter, error) {
	date, err := compileDatePattern(dateFormat)
	if err != nil {
		return nil, err
	}

	tpl, err := raymond.Parse(messageTemplate)
	if err != nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "invalid message template",
			goerr.V("template", messageTemplate),
			goerr.V("error", err.Error()),
		)
	}

	x := &Formatter{
		date:     date,
		template: tpl,
		loc:      time.UTC,
	}
	for _, opt := range options {
		opt(x)
	}

	return x, nil
}

// NewDefault returns a formatter with the default tenant date format and
// message template.
func NewDefault() *Formatter {
	x, err := New(model.DefaultDateFormat, model.DefaultMessageTemplate)
	if err != nil {
		panic(err)
	}
	return x
}

// Format renders one revision. It only fails when the record carries a
// malformed timestamp.
func (x *Formatter) Format(rev *model.RevisionRecord) (string, error) {
	if rev == nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "revision record is nil")
	}

	ts, err := time.Parse(time.RFC3339Nano, rev.Timestamp)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse revision timestamp",
			goerr.V("revision", rev.Number),
			goerr.V("timestamp", rev.Timestamp),
		)
	}

	body := rev.Message
	if body == "" {
		body = emptyMessageBody
	}

	out, err := x.template.Exec(map[string]string{
		"auth": rev.Author,
		"date": x.date.format(ts.In(x.loc)),
		"rnum": formatInt(rev.Number),
		"body": body,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render revision", goerr.V("revision", rev.Number))
	}

	return html.UnescapeString(out), nil
}
