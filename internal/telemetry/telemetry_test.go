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

package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/a11y-tools/atspi-go/internal/telemetry"
	"github.com/stretchr/testify/require"
)

func TestStartDispatchEndsCleanlyOnSuccess(t *testing.T) {
	ctx, end := telemetry.StartDispatch(context.Background())
	require.NotNil(t, telemetry.SpanFromContext(ctx))
	end("org.a11y.atspi.Event.Object", nil)
}

func TestStartDispatchRecordsError(t *testing.T) {
	ctx, end := telemetry.StartDispatch(context.Background())
	require.NotNil(t, ctx)
	end("", errors.New("boom"))
}

func TestRecordHelpersDoNotPanic(t *testing.T) {
	telemetry.RecordDispatched("org.a11y.atspi.Event.Mouse")
	telemetry.RecordDecodeError("UnknownSignal")
	telemetry.RecordUnknownSignal("org.a11y.atspi.Cache")
}
