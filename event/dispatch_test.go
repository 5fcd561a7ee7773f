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

package event_test

import (
	"context"
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/cache"
	"github.com/a11y-tools/atspi-go/event"
	"github.com/a11y-tools/atspi-go/mouse"
	"github.com/a11y-tools/atspi-go/object"
	"github.com/a11y-tools/atspi-go/registry"
	"github.com/a11y-tools/atspi-go/window"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef() atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.99", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/obj")}
}

func TestDispatchRoutesObjectEvent(t *testing.T) {
	item := testObjectRef()
	src := object.StateChangedEvent{Item: item, State: "focused", Enabled: 1}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	oe, err := ev.Object()
	require.NoError(t, err)
	got, err := oe.StateChanged()
	require.NoError(t, err)
	require.Equal(t, src, got)
	require.Equal(t, item.Path, ev.Path())
}

func TestDispatchRoutesWindowCloseViaLiteralMatch(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, window.DBUSInterface, "Close")

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	we, err := ev.Window()
	require.NoError(t, err)
	got, err := we.Close()
	require.NoError(t, err)
	require.Equal(t, item, got.Item)
}

func TestDispatchRoutesMouseEvent(t *testing.T) {
	item := testObjectRef()
	src := mouse.AbsEvent{Item: item, X: 1, Y: 2}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	me, err := ev.Mouse()
	require.NoError(t, err)
	got, err := me.Abs()
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestDispatchRoutesCacheAdd(t *testing.T) {
	item := testObjectRef()
	node := cache.CacheItem{
		Object:      item,
		App:         item,
		Parent:      atspi.NullObjectRef(),
		Index:       -1,
		ChildCount:  0,
		Interfaces:  cache.InterfaceSet{"Accessible"},
		ShortName:   "",
		Role:        0,
		Name:        "root",
		States:      cache.StateSet{0},
	}
	src := cache.AddEvent{Item: item, Node: node}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	ce, err := ev.Cache()
	require.NoError(t, err)
	got, err := ce.Add()
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestDispatchRoutesCacheRemoveViaSoSignature(t *testing.T) {
	item := testObjectRef()
	src := cache.RemoveEvent{Item: item, Node: atspi.NullObjectRef()}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	ce, err := ev.Cache()
	require.NoError(t, err)
	got, err := ce.Remove()
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestDispatchRoutesSocketAvailableViaSoSignature(t *testing.T) {
	item := testObjectRef()
	src := registry.AvailableEvent{Item: item, Socket: atspi.NullObjectRef()}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	got, err := ev.Available()
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestDispatchRoutesListenerEvents(t *testing.T) {
	item := testObjectRef()
	src := registry.RegisteredEvent{Item: item, Listener: registry.ListenerPair{BusName: ":1.2", Path: "object:state-changed"}}
	msg := src.ToMessage()

	ev, err := event.Dispatch(context.Background(), msg)
	require.NoError(t, err)

	le, err := ev.Listener()
	require.NoError(t, err)
	got, err := le.Registered()
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestDispatchUnknownBusSignature(t *testing.T) {
	item := testObjectRef()
	headers := atspi.NewSignalHeaders(item, object.DBUSInterface, "Whatever", "u")
	msg := atspi.NewSignalMessage(headers, []interface{}{uint32(7)})

	_, err := event.Dispatch(context.Background(), msg)
	require.Error(t, err)
}

func TestDispatchUnknownInterface(t *testing.T) {
	item := testObjectRef()
	msg := atspi.EncodeItemOnlyATSPI(item, "org.a11y.atspi.Event.NotReal", "Whatever")

	_, err := event.Dispatch(context.Background(), msg)
	require.Error(t, err)
}

func TestDispatchSoBranchUnknownMember(t *testing.T) {
	item := testObjectRef()
	headers := atspi.NewSignalHeaders(item, atspi.InterfaceSocket, "NotReal", atspi.SigObjectRefPair)
	msg := atspi.NewSignalMessage(headers, atspi.NullObjectRef().Struct())

	_, err := event.Dispatch(context.Background(), msg)
	require.Error(t, err)
}
