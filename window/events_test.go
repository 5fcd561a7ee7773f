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

package window_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/window"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.9", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/frame1")}
}

func TestCloseRoundTripsViaLiteralMatch(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, window.DBUSInterface, "Close")

	events, err := window.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)

	got, err := events.Close()
	require.NoError(t, err)
	require.Equal(t, item, got.Item)
}

func TestUUshadePreservesWireSpelling(t *testing.T) {
	item := testObjectRef()
	e := window.UUshadeEvent{}
	msg := atspi.EncodeItemOnlyATSPI(item, window.DBUSInterface, e.DBUSMember())
	require.Equal(t, "uUshade", window.MemberUUshade)

	events, err := window.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.UUshade()
	require.NoError(t, err)
	require.Equal(t, item, got.Item)
}

func TestPropertyChangeRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := window.PropertyChangeEvent{Item: item, Property: "accessible-name", Value: dbus.MakeVariant("Untitled")}
	msg := e.ToMessage()

	got, err := window.PropertyChangeEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, window.DBUSInterface, "NotReal")
	_, err := window.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}

func TestEventsProjectionMismatch(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, window.DBUSInterface, window.MemberMinimize)
	events, err := window.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)

	_, err = events.Maximize()
	require.Error(t, err)
}
