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

package focus_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/focus"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.13", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/42")}
}

func TestFocusRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := focus.FocusEvent{Item: item}
	msg := e.ToMessage()

	got, err := focus.FocusEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedDispatch(t *testing.T) {
	item := testObjectRef()
	e := focus.FocusEvent{Item: item}
	msg := e.ToMessage()

	events, err := focus.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.Focus()
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, focus.DBUSInterface, "NotFocus")
	_, err := focus.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}
