// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package telemetry instruments the top-level dispatcher with a trace span
// per classification and a small set of Prometheus counters. Both are
// strictly observational: nothing here changes dispatch outcomes, and a
// caller that never configures a tracer provider or scrapes /metrics pays
// only the cost of a no-op span and an unread counter increment.
package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/a11y-tools/atspi-go/event")

var (
	dispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atspi_dispatched_total",
			Help: "Total number of raw messages successfully classified into an Event.",
		},
		[]string{"interface"},
	)

	decodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atspi_decode_errors_total",
			Help: "Total number of raw messages that failed classification or body decode.",
		},
		[]string{"kind"},
	)

	unknownSignalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atspi_unknown_signal_total",
			Help: "Total number of (so)- or (ss)-bodied messages rejected for an unrecognized member.",
		},
		[]string{"interface"},
	)
)

// StartDispatch opens a span for one top-level classification attempt. The
// caller ends it via the returned function once the dispatch outcome (event
// or error) is known.
func StartDispatch(ctx context.Context) (context.Context, func(interfaceName string, err error)) {
	ctx, span := tracer.Start(ctx, "atspi.event.Dispatch")
	return ctx, func(interfaceName string, err error) {
		defer span.End()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		span.SetAttributes(attribute.String("atspi.interface", interfaceName))
		span.SetStatus(codes.Ok, "")
	}
}

// RecordDispatched increments the per-interface dispatched counter.
func RecordDispatched(interfaceName string) {
	dispatchedTotal.WithLabelValues(interfaceName).Inc()
}

// RecordDecodeError increments the decode-error counter for the given error
// kind string (Kind.String() from the root package).
func RecordDecodeError(kind string) {
	decodeErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordUnknownSignal increments the unknown-signal counter for the
// interface (or "" for the (so) branch, which precedes interface
// resolution).
func RecordUnknownSignal(interfaceName string) {
	unknownSignalTotal.WithLabelValues(interfaceName).Inc()
}

// SpanFromContext exposes the active span for a dispatch in progress, so a
// caller that wraps Dispatch in its own parent span can enrich it directly
// rather than going through the RecordX helpers.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
