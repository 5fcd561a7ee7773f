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

package keyboard_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/keyboard"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.5", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/root")}
}

func TestModifiersRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := keyboard.ModifiersEvent{Item: item, PreviousModifiers: 0, CurrentModifiers: 1}
	msg := e.ToMessage()

	events, err := keyboard.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.Modifiers()
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, keyboard.DBUSInterface, "KeyPress")
	_, err := keyboard.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}

func TestEmptyEventsProjectionFails(t *testing.T) {
	var events keyboard.Events
	_, err := events.Modifiers()
	require.Error(t, err)
}
