package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/polyfit/pkg/errors"
)

func TestErrFmtHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.NewNotFittedError("Ridge", "Predict")
	logger.Error("prediction failed", ErrAttr(err))

	var record map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("log output is not valid JSON: %v", jsonErr)
	}

	if _, ok := record[ErrAttrKey]; !ok {
		t.Error("expected error attribute in log record")
	}
	if _, ok := record[StacktraceAttrKey]; !ok {
		t.Error("expected stacktrace attribute for cockroachdb error")
	}
}

func TestErrFmtHandler_PlainRecord(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Info("fit complete", DegreeKey, 3, AlphaKey, 1.0)

	out := buf.String()
	if strings.Contains(out, StacktraceAttrKey) {
		t.Error("stacktrace attribute should not appear without an error attribute")
	}
	if !strings.Contains(out, DegreeKey) {
		t.Errorf("expected %q attribute in output: %s", DegreeKey, out)
	}
}

func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		if got := ToLogLevel(in); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEnableZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	EnableZerologWarnings(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewConditioningWarning("Ridge.Fit", 1e14, 1e12))

	out := buf.String()
	if !strings.Contains(out, "condition_number") {
		t.Errorf("expected structured warning fields, got: %s", out)
	}
}
