package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus"
)

func TestTrackingIDIsLogged(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{DisableTimestamp: true},
	})

	ctx := WithTrackingID(context.Background())
	id := TrackingID(ctx)
	c.Assert(id, qt.Not(qt.Equals), "")

	logger.WithContext(ctx).Info("hello")
	c.Assert(strings.Contains(buf.String(), "trackingID="+id), qt.IsTrue)
}

func TestTrackingIDMissing(t *testing.T) {
	c := qt.New(t)
	c.Assert(TrackingID(context.Background()), qt.Equals, "")
}
