//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the tracing and metrics plumbing shared by the tool
// registry and the public telemetry packages.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// telemetry service constants.
const (
	ServiceName      = "trpc-tool-go"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "trpc-go-agent"
	InstrumentName   = "trpc.group/trpc-go/trpc-tool-go"

	OperationExecuteTool = "execute_tool"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC string = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP string = "http"
)

// NewExecuteToolSpanName creates a new execute tool span name.
func NewExecuteToolSpanName(toolName string) string {
	return fmt.Sprintf("%s %s", OperationExecuteTool, toolName)
}

// grpcNewClient allows tests to inject a custom client constructor.
var grpcNewClient = grpc.NewClient

// NewGRPCConn creates a connection to an OTLP collector. The connection is
// established lazily on first use.
func NewGRPCConn(endpoint string) (*grpc.ClientConn, error) {
	// Note the use of insecure transport here. TLS is recommended in production.
	conn, err := grpcNewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}
	return conn, nil
}

// ResourceConfig describes the service that emits telemetry.
type ResourceConfig struct {
	ServiceName      string
	ServiceNamespace string
	ServiceVersion   string
	Attributes       []attribute.KeyValue
}

// NewResource builds the OpenTelemetry resource for cfg. Attributes from
// OTEL_RESOURCE_ATTRIBUTES are merged in.
func NewResource(ctx context.Context, cfg ResourceConfig) (*resource.Resource, error) {
	opts := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceNamespace(cfg.ServiceNamespace),
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
	}
	if len(cfg.Attributes) > 0 {
		opts = append(opts, resource.WithAttributes(cfg.Attributes...))
	}
	return resource.New(ctx, opts...)
}
