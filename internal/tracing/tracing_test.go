package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/nadzzz/turntable/internal/config"
)

func TestSetupDisabled(t *testing.T) {
	p, err := Setup(config.TracingConfig{Enabled: false}, nil)
	require.NoError(t, err)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetupExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	p, err := Setup(config.TracingConfig{Enabled: true, ServiceName: "turntable-test"}, &buf)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "turn")
	span.SetAttributes(AttrTurnID.String("t-1"))
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"turn"`)
	assert.Contains(t, buf.String(), "turntable-test")
}
