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

package mouse_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/mouse"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.3", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/root")}
}

func TestAbsRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := mouse.AbsEvent{Item: item, X: 120, Y: 340}
	msg := e.ToMessage()

	got, err := mouse.AbsEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestButtonRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := mouse.ButtonEvent{Item: item, Kind: "1p", MouseX: 50, MouseY: 60}
	msg := e.ToMessage()

	events, err := mouse.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.Button()
	require.NoError(t, err)
	require.Equal(t, e, got)

	_, err = events.Rel()
	require.Error(t, err)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, mouse.DBUSInterface, "Scroll")
	_, err := mouse.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}
