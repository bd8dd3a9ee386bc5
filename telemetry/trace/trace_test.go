//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestTracesEndpoint(t *testing.T) {
	const (
		customEndpoint  = "custom-trace:4317"
		genericEndpoint = "generic-endpoint:4317"
	)

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", customEndpoint)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", genericEndpoint)
	assert.Equal(t, customEndpoint, tracesEndpoint("grpc"))

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	assert.Equal(t, genericEndpoint, tracesEndpoint("grpc"))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, "localhost:4317", tracesEndpoint("grpc"))
	assert.Equal(t, "localhost:4318", tracesEndpoint("http"))
}

func TestParseEndpointURL(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		endpoint  string
		urlPath   string
		wantError bool
	}{
		{"with scheme and path", "http://localhost:3000/api/public/otel", "localhost:3000", "/api/public/otel", false},
		{"without scheme", "collector:4318/otlp/v1/traces", "collector:4318", "/otlp/v1/traces", false},
		{"no path implies slash", "example.com", "example.com", "/", false},
		{"no host error", "http:///missing-host", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint, path, err := parseEndpointURL(tc.in)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.endpoint, endpoint)
			assert.Equal(t, tc.urlPath, path)
		})
	}
}

func restoreTracer(t *testing.T) {
	orig := Tracer
	t.Cleanup(func() { Tracer = orig })
}

func TestStart(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	old := shutdownTimeout
	shutdownTimeout = 50 * time.Millisecond
	t.Cleanup(func() { shutdownTimeout = old })

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "default grpc"},
		{name: "grpc endpoint", opts: []Option{WithProtocol("grpc"), WithEndpoint("localhost:4317")}},
		{name: "grpc url and headers", opts: []Option{
			WithEndpointURL("localhost:9999"),
			WithHeaders(map[string]string{"Authorization": "Bearer abc"}),
		}},
		{name: "http endpoint", opts: []Option{WithProtocol("http"), WithEndpoint("localhost:4318")}},
		{name: "http url and headers", opts: []Option{
			WithProtocol("http"),
			WithEndpointURL("http://localhost:4318/custom/path"),
			WithHeaders(map[string]string{"X-Test": "yes"}),
		}},
		{name: "http url without scheme", opts: []Option{
			WithProtocol("http"),
			WithEndpointURL("collector:4318/otlp/v1/traces"),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			restoreTracer(t)
			clean, err := Start(context.Background(), tc.opts...)
			require.NoError(t, err)
			require.NotNil(t, clean)

			_, span := Tracer.Start(context.Background(), "test-span")
			assert.True(t, span.SpanContext().IsValid())
			assert.True(t, span.IsRecording())
			span.End()
			// No collector is running; export errors on shutdown are expected.
			start := time.Now()
			_ = clean()
			assert.Less(t, time.Since(start), 5*time.Second)
		})
	}
}

func TestStartInvalidEndpointURL(t *testing.T) {
	restoreTracer(t)
	_, err := Start(context.Background(),
		WithProtocol("http"),
		WithEndpointURL("http:///bad"),
	)
	require.Error(t, err)
}

func TestBuildResource(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "env-service")
	t.Setenv("OTEL_RESOURCE_ATTRIBUTES", "team=ai,env=staging")

	opts := &options{}
	WithServiceName("option-service")(opts)
	WithServiceNamespace("custom-ns")(opts)
	WithServiceVersion("1.2.3")(opts)
	WithResourceAttributes(
		attribute.String("team", "ml"),
		attribute.String("custom", "value"),
	)(opts)

	res, err := buildResource(context.Background(), opts)
	require.NoError(t, err)

	attrs := make(map[string]string)
	iter := res.Iter()
	for iter.Next() {
		kv := iter.Attribute()
		if kv.Value.Type() == attribute.STRING {
			attrs[string(kv.Key)] = kv.Value.AsString()
		}
	}
	// OTEL_SERVICE_NAME wins over the option.
	assert.Equal(t, "env-service", attrs[string(semconv.ServiceNameKey)])
	assert.Equal(t, "staging", attrs["env"])
	assert.Equal(t, "ml", attrs["team"])
	assert.Equal(t, "value", attrs["custom"])
	assert.Equal(t, "custom-ns", attrs[string(semconv.ServiceNamespaceKey)])
	assert.Equal(t, "1.2.3", attrs[string(semconv.ServiceVersionKey)])
}
