package logger

import (
	"bytes"
	"context"
	"testing"

	"factsagent/internal/platform/testkit"
)

// Init is once-per-process, so a single test drives the initialized logger
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:   "debug",
		Format:  "json",
		Service: "factsagent-test",
		Writer:  &buf,
	})

	t.Run("root fields", func(t *testing.T) {
		Get().Info().Msg("hello there")
		out := buf.String()
		testkit.MustContain(t, out, `"service":"factsagent-test"`)
		testkit.MustContain(t, out, "hello there")
	})

	t.Run("named component", func(t *testing.T) {
		buf.Reset()
		Named("bus").Info().Msg("component line")
		testkit.MustContain(t, buf.String(), `"component":"bus"`)
	})

	t.Run("event context", func(t *testing.T) {
		buf.Reset()
		ctx := WithEvent(context.Background(), "ev-1", "exec-9")
		C(ctx).Info().Msg("scoped line")
		out := buf.String()
		testkit.MustContain(t, out, `"event_id":"ev-1"`)
		testkit.MustContain(t, out, `"execution_id":"exec-9"`)
	})

	t.Run("empty context adds nothing", func(t *testing.T) {
		buf.Reset()
		C(context.Background()).Info().Msg("bare line")
		if bytes.Contains(buf.Bytes(), []byte("event_id")) {
			t.Fatalf("unexpected event fields: %s", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"info":    "info",
		"WARN":    "warn",
		"warning": "warn",
		"bogus":   "debug",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
