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

package object_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/object"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.42", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/17")}
}

func TestStateChangedRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := object.StateChangedEvent{Item: item, State: "focused", Enabled: 1}

	msg := e.ToMessage()
	got, err := object.StateChangedEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedDispatchesStateChanged(t *testing.T) {
	item := testObjectRef()
	e := object.StateChangedEvent{Item: item, State: "focused", Enabled: 1}
	msg := e.ToMessage()

	events, err := object.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.StateChanged()
	require.NoError(t, err)
	require.Equal(t, e, got)

	_, err = events.BoundsChanged()
	require.Error(t, err)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, object.DBUSInterface, "NotARealMember")
	_, err := object.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}

func TestBoundsChangedDiscardsBodyFields(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, object.DBUSInterface, object.MemberBoundsChanged)
	e, err := object.BoundsChangedEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, item.Path, e.Path())
	require.Equal(t, item.Name, e.Sender())
}

func TestTextChangedProjectsDetailFields(t *testing.T) {
	item := testObjectRef()
	e := object.TextChangedEvent{Item: item, Detail: "insert", StartPos: 3, Length: 5, Text: dbus.MakeVariant("abcde")}
	msg := e.ToMessage()
	got, err := object.TextChangedEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}
