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

package registry_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/registry"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.1", Path: dbus.ObjectPath("/org/a11y/atspi/registry")}
}

func TestRegisteredEventRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := registry.RegisteredEvent{Item: item, Listener: registry.ListenerPair{BusName: ":1.9", Path: "object:state-changed"}}

	msg := e.ToMessage()
	got, err := registry.RegisteredEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestDeregisteredEventRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := registry.DeregisteredEvent{Item: item, Listener: registry.ListenerPair{BusName: ":1.9", Path: "object:state-changed"}}

	msg := e.ToMessage()
	got, err := registry.DeregisteredEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedDispatchesListenerEvents(t *testing.T) {
	item := testObjectRef()
	reg := registry.RegisteredEvent{Item: item, Listener: registry.ListenerPair{BusName: ":1.9", Path: "focus:focus"}}

	events, err := registry.FromMessageInterfaceChecked(reg.ToMessage())
	require.NoError(t, err)
	got, err := events.Registered()
	require.NoError(t, err)
	require.Equal(t, reg, got)

	_, err = events.Deregistered()
	require.Error(t, err)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	headers := atspi.NewSignalHeaders(item, atspi.InterfaceRegistry, "NotARealMember", atspi.SigListenerPair)
	msg := atspi.NewSignalMessage(headers, []interface{}{"busname", "path"})

	_, err := registry.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}

func TestAvailableEventRoundTrip(t *testing.T) {
	item := testObjectRef()
	e := registry.AvailableEvent{Item: item, Socket: testObjectRef()}

	msg := e.ToMessage()
	got, err := registry.AvailableEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
	require.Empty(t, e.RegistryEventString())
}

func TestFromMessageSocketInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef()
	headers := atspi.NewSignalHeaders(item, atspi.InterfaceSocket, "NotARealMember", atspi.SigObjectRefPair)
	msg := atspi.NewSignalMessage(headers, item.Struct())

	_, err := registry.FromMessageSocketInterfaceChecked(msg)
	require.Error(t, err)
}

func TestListenerEventsDelegatesToActiveVariant(t *testing.T) {
	item := testObjectRef()
	dereg := registry.DeregisteredEvent{Item: item, Listener: registry.ListenerPair{BusName: ":1.9", Path: "mouse:button"}}
	events := registry.NewFromDeregistered(dereg)

	require.Equal(t, registry.MemberEventListenerDeregistered, events.DBUSMember())
	require.Equal(t, atspi.InterfaceRegistry, events.DBUSInterface())
	require.Equal(t, item.Path, events.Path())
	require.Equal(t, item.Name, events.Sender())
	require.NotEmpty(t, events.EventMatchRule())
	require.NotEmpty(t, events.RegistryEventString())
}

func TestZeroListenerEventsDelegatesSafely(t *testing.T) {
	var events registry.ListenerEvents
	require.Empty(t, events.DBUSMember())
	require.Empty(t, events.Path())
	require.Empty(t, events.Sender())
}
