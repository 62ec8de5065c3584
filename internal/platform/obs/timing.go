package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const CommandIDKey ctxKey = "cmd_id"

// WithCommandID tags ctx with the sequence number of the input line being handled.
func WithCommandID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, CommandIDKey, id)
}

func Time(ctx context.Context, logger logrus.FieldLogger, name string) func(errp *error) {
	start := time.Now()

	cmdID, _ := ctx.Value(CommandIDKey).(uint64)

	return func(errp *error) {
		entry := logger.WithFields(logrus.Fields{
			"cmd_id": cmdID,
			"op":     name,
			"dur":    time.Since(start),
		})

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Debug("operation failed")
			return
		}
		entry.Debug("operation done")
	}
}
