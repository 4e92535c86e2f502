package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const TrackingIDKey loggingContextKey = "trackingID"

// WithTrackingID attaches a fresh tracking ID to the context, every log line written with this context will carry it
func WithTrackingID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TrackingIDKey, uuid.New().String())
}

// TrackingID returns the tracking ID stored in ctx, or an empty string
func TrackingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(TrackingIDKey).(string)
	return v
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if trackingID := TrackingID(entry.Context); trackingID != "" {
		entry.Data["trackingID"] = trackingID
	}

	return f.TextFormatter.Format(entry)
}

// Init configures the global logrus logger
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})

	if err != nil {
		logrus.Warnf("unknown log level %q, falling back to info", level)
	}
}
