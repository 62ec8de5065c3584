package console

import (
	"context"
	"subway-simulation/internal/platform/obs"
	"time"

	"github.com/sirupsen/logrus"
)

// loggingMiddleware logs each handled line with its outcome and duration.
func loggingMiddleware(next Handler, logger logrus.FieldLogger) Handler {
	return HandlerFunc(func(ctx context.Context, in Input) Outcome {
		start := time.Now()

		out := next.Handle(ctx, in)

		cmdID, _ := ctx.Value(obs.CommandIDKey).(uint64)
		logger.WithFields(logrus.Fields{
			"cmd_id": cmdID,
			"input":  in.Raw,
			"lines":  len(out.Lines),
			"stop":   out.Stop,
			"dur":    time.Since(start),
		}).Info("command handled")

		return out
	})
}
