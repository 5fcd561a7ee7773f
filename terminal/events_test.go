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

package terminal_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/terminal"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.7", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/term0")}
}

func TestColumnCountChangedPreservesWireSpelling(t *testing.T) {
	require.Equal(t, "ColumncountChanged", terminal.MemberColumncountChanged)

	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, terminal.DBUSInterface, terminal.MemberColumncountChanged)

	events, err := terminal.FromMessageInterfaceChecked(msg)
	require.NoError(t, err)
	got, err := events.ColumnCountChanged()
	require.NoError(t, err)
	require.Equal(t, item, got.Item)
}

func TestCharWidthChangedPreservesWireSpelling(t *testing.T) {
	require.Equal(t, "CharwidthChanged", terminal.MemberCharwidthChanged)
}

func TestLineChangedRoundTrip(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, terminal.DBUSInterface, terminal.MemberLineChanged)

	got, err := terminal.LineChangedEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, item, got.Item)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, terminal.DBUSInterface, "Bell")
	_, err := terminal.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}
