package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", Sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", Sampler(1).Description())
	assert.Contains(t, Sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
	assert.Contains(t, Sampler(0.25).Description(), "ParentBased")
}

func TestServiceAttributes(t *testing.T) {
	attrs := serviceAttributes("mcplanner", Config{})
	require.Len(t, attrs, 1)
	assert.Equal(t, semconv.ServiceName("mcplanner"), attrs[0])

	attrs = serviceAttributes("mcplanner", Config{ServiceVersion: "1.2.3"})
	require.Len(t, attrs, 2)
	assert.Equal(t, semconv.ServiceVersion("1.2.3"), attrs[1])
}

func TestSetupRejectsSampleRatio(t *testing.T) {
	_, err := Setup(context.Background(), "test-service", Config{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		SampleRatio: 1.5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample ratio")
}
