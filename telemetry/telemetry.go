// Package telemetry carries the OpenTelemetry instruments and the slog
// bridge used across the transport core.
package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/restio/restio"

var (
	meter = otel.Meter(scopeName)

	clientRequests metric.Int64Counter
	clientTimeouts metric.Int64Counter
	sessions       metric.Int64Counter
)

func init() {
	var err error

	clientRequests, err = meter.Int64Counter("http.client.requests",
		metric.WithDescription("Outbound requests by result"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	clientTimeouts, err = meter.Int64Counter("http.client.timeouts",
		metric.WithDescription("Outbound requests that hit the read deadline"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	sessions, err = meter.Int64Counter("http.server.sessions",
		metric.WithDescription("Inbound sessions by response status"),
		metric.WithUnit("{session}"))
	if err != nil {
		panic(err)
	}
}

// NewLogger returns a slog logger bridged to the global OpenTelemetry
// logger provider.
func NewLogger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}

// ClientRequestDone records the outcome of one client request.
func ClientRequestDone(err error, timedOut bool) {
	result := "ok"
	if err != nil {
		result = err.Error()
	}

	ctx := context.Background()
	clientRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	if timedOut {
		clientTimeouts.Add(ctx, 1)
	}
}

// SessionDone records one handled inbound session.
func SessionDone(status uint16) {
	sessions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("status", int(status))))
}
