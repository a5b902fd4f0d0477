package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogRecordCarriesAppId(t *testing.T) {
	w := &DBLogWriter{appId: "go-citizen"}

	rec := w.record(LogEntry{
		Level:     zapcore.WarnLevel,
		Message:   "certificate sweep failed",
		IpAddress: "10.0.0.1",
		Caller:    "application.sweep",
	})

	if rec.AppId != "go-citizen" {
		t.Errorf("expected app id stamped on the row, got %q", rec.AppId)
	}
	if rec.Level != "WARN" {
		t.Errorf("expected WARN, got %q", rec.Level)
	}
	if rec.CreatedOnUtc.IsZero() {
		t.Error("created timestamp not set")
	}
}
