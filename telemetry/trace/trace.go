//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package trace exports tool call spans over OTLP.
//
// Tracer is what the tool registry starts its execute_tool spans on. Until
// Start is called it follows the global OpenTelemetry tracer provider.
package trace

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	itelemetry "trpc.group/trpc-go/trpc-tool-go/internal/telemetry"
)

// Tracer is the tracer used for tool call spans.
var Tracer trace.Tracer = otel.Tracer(itelemetry.InstrumentName)

// shutdownTimeout bounds the final flush done by clean.
var shutdownTimeout = 10 * time.Second

// Start installs an OTLP tracer provider as the global provider and points
// Tracer at it. clean flushes pending spans and releases the exporter.
//
// The endpoint falls back to OTEL_EXPORTER_OTLP_TRACES_ENDPOINT, then
// OTEL_EXPORTER_OTLP_ENDPOINT, then the protocol's localhost default.
func Start(ctx context.Context, opts ...Option) (clean func() error, err error) {
	o := &options{
		serviceName:      itelemetry.ServiceName,
		serviceVersion:   itelemetry.ServiceVersion,
		serviceNamespace: itelemetry.ServiceNamespace,
		protocol:         itelemetry.ProtocolGRPC,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.tracesEndpoint == "" {
		o.tracesEndpoint = tracesEndpoint(o.protocol)
	}

	res, err := buildResource(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var (
		exporter sdktrace.SpanExporter
		closers  []func() error
	)
	switch o.protocol {
	case itelemetry.ProtocolHTTP:
		exporter, err = newHTTPExporter(ctx, o)
	default:
		var conn interface{ Close() error }
		exporter, conn, err = newGRPCExporter(ctx, o)
		if conn != nil {
			closers = append(closers, conn.Close)
		}
	}
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	Tracer = tp.Tracer(itelemetry.InstrumentName)

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		errs := []error{tp.Shutdown(ctx)}
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}, nil
}

func newHTTPExporter(ctx context.Context, o *options) (sdktrace.SpanExporter, error) {
	httpOpts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if o.endpointURL != "" {
		endpoint, path, err := parseEndpointURL(o.endpointURL)
		if err != nil {
			return nil, err
		}
		httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithURLPath(path))
	} else {
		httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(o.tracesEndpoint))
	}
	if len(o.headers) > 0 {
		httpOpts = append(httpOpts, otlptracehttp.WithHeaders(o.headers))
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP trace exporter: %w", err)
	}
	return exporter, nil
}

func newGRPCExporter(ctx context.Context, o *options) (sdktrace.SpanExporter, interface{ Close() error }, error) {
	endpoint := o.tracesEndpoint
	if o.endpointURL != "" {
		// gRPC has no URL path; only the host part is used.
		ep, _, err := parseEndpointURL(o.endpointURL)
		if err != nil {
			return nil, nil, err
		}
		endpoint = ep
	}
	conn, err := itelemetry.NewGRPCConn(endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace connection: %w", err)
	}
	grpcOpts := []otlptracegrpc.Option{otlptracegrpc.WithGRPCConn(conn)}
	if len(o.headers) > 0 {
		grpcOpts = append(grpcOpts, otlptracegrpc.WithHeaders(o.headers))
	}
	exporter, err := otlptracegrpc.New(ctx, grpcOpts...)
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	return exporter, conn, nil
}

func tracesEndpoint(protocol string) string {
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	switch protocol {
	case itelemetry.ProtocolHTTP:
		return "localhost:4318"
	default:
		return "localhost:4317"
	}
}

// parseEndpointURL splits a collector URL into host[:port] and path. The
// scheme is optional; an empty path becomes "/".
func parseEndpointURL(raw string) (endpoint, urlPath string, err error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid endpoint URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("invalid endpoint URL %q: missing host", raw)
	}
	urlPath = u.Path
	if urlPath == "" {
		urlPath = "/"
	}
	return u.Host, urlPath, nil
}

// Option configures Start.
type Option func(*options)

type options struct {
	tracesEndpoint     string
	endpointURL        string
	headers            map[string]string
	serviceName        string
	serviceVersion     string
	serviceNamespace   string
	protocol           string
	resourceAttributes []attribute.KeyValue
}

// WithEndpoint sets the collector host and port, e.g. "example.com:4317".
// It takes precedence over the OTEL_EXPORTER_OTLP_* environment variables.
func WithEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.tracesEndpoint = endpoint
	}
}

// WithEndpointURL sets a full collector URL such as
// "http://localhost:3000/api/public/otel/v1/traces". It wins over
// WithEndpoint. Only the host is used for gRPC.
func WithEndpointURL(endpointURL string) Option {
	return func(opts *options) {
		opts.endpointURL = endpointURL
	}
}

// WithHeaders sets headers sent with every export request.
func WithHeaders(headers map[string]string) Option {
	return func(opts *options) {
		opts.headers = headers
	}
}

// WithProtocol sets the protocol to use for trace export.
// Supported protocols are "grpc" (default) and "http".
func WithProtocol(protocol string) Option {
	return func(opts *options) {
		opts.protocol = protocol
	}
}

// WithServiceName overrides the service.name resource attribute.
// OTEL_SERVICE_NAME still wins when set.
func WithServiceName(serviceName string) Option {
	return func(opts *options) {
		opts.serviceName = serviceName
	}
}

// WithServiceNamespace overrides the service.namespace resource attribute.
func WithServiceNamespace(serviceNamespace string) Option {
	return func(opts *options) {
		opts.serviceNamespace = serviceNamespace
	}
}

// WithServiceVersion overrides the service.version resource attribute.
func WithServiceVersion(serviceVersion string) Option {
	return func(opts *options) {
		opts.serviceVersion = serviceVersion
	}
}

// WithResourceAttributes appends custom resource attributes. They override
// OTEL_RESOURCE_ATTRIBUTES for the same keys.
func WithResourceAttributes(attrs ...attribute.KeyValue) Option {
	return func(opts *options) {
		opts.resourceAttributes = append(opts.resourceAttributes, attrs...)
	}
}

func buildResource(ctx context.Context, o *options) (*resource.Resource, error) {
	return itelemetry.NewResource(ctx, itelemetry.ResourceConfig{
		ServiceName:      o.serviceName,
		ServiceNamespace: o.serviceNamespace,
		ServiceVersion:   o.serviceVersion,
		Attributes:       o.resourceAttributes,
	})
}
