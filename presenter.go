package solarsystem

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// InfoPresenter displays the record of the selected body. nil means nothing is
// selected and the placeholder should be shown.
type InfoPresenter interface {
	Present(rec *BodyRecord)
}

// CursorSetter switches the pointer between its normal and interactive shapes.
type CursorSetter interface {
	SetInteractive(on bool)
}

// LogPresenter writes records to the log, used when running headless.
type LogPresenter struct {
	Logger log.FieldLogger
}

func (lp LogPresenter) Present(rec *BodyRecord) {
	l := lp.Logger
	if l == nil {
		l = log.StandardLogger()
	}
	if rec == nil {
		l.Info(Placeholder)
		return
	}
	l.WithField("body", rec.Name).Info(strings.Join(rec.Lines()[1:], " | "))
}
