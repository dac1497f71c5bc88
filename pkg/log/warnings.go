package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

// EnableZerologWarnings routes library warnings (for example ConditioningWarning)
// to a zerolog logger writing to w. Warning types that implement
// zerolog.LogObjectMarshaler are embedded as structured fields.
func EnableZerologWarnings(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler).Msg("polyfit warning")
			return
		}
		event.Err(warning).Msg("polyfit warning")
	})
}
