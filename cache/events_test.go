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

package cache_test

import (
	"testing"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/cache"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func testObjectRef(suffix string) atspi.ObjectRef {
	return atspi.ObjectRef{Name: ":1.50", Path: dbus.ObjectPath("/org/a11y/atspi/accessible/" + suffix)}
}

func testCacheItem() cache.CacheItem {
	item := testObjectRef("child")
	return cache.CacheItem{
		Object:     item,
		App:        testObjectRef("app"),
		Parent:     atspi.NullObjectRef(),
		Index:      0,
		ChildCount: 2,
		Interfaces: cache.InterfaceSet{"Accessible", "Component"},
		ShortName:  "",
		Role:       42,
		Name:       "a widget",
		States:     cache.StateSet{0, 1},
	}
}

func TestAddEventRoundTrip(t *testing.T) {
	item := testObjectRef("root")
	e := cache.AddEvent{Item: item, Node: testCacheItem()}

	msg := e.ToMessage()
	got, err := cache.AddEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestLegacyAddEventRoundTrip(t *testing.T) {
	item := testObjectRef("root")
	node := cache.LegacyCacheItem{
		Object:     item,
		App:        testObjectRef("app"),
		Parent:     atspi.NullObjectRef(),
		Children:   []atspi.ObjectRef{testObjectRef("c1"), testObjectRef("c2")},
		Interfaces: cache.InterfaceSet{"Accessible"},
		ShortName:  "",
		Role:       7,
		Name:       "legacy widget",
		States:     cache.StateSet{3},
	}
	e := cache.LegacyAddEvent{Item: item, Node: node}

	msg := e.ToMessage()
	got, err := cache.LegacyAddEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestRemoveEventRoundTrip(t *testing.T) {
	item := testObjectRef("root")
	e := cache.RemoveEvent{Item: item, Node: testObjectRef("removed")}

	msg := e.ToMessage()
	got, err := cache.RemoveEventFromMessageUnchecked(msg)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFromMessageInterfaceCheckedDispatchesByMemberAndSignature(t *testing.T) {
	item := testObjectRef("root")

	add := cache.AddEvent{Item: item, Node: testCacheItem()}
	events, err := cache.FromMessageInterfaceChecked(add.ToMessage())
	require.NoError(t, err)
	require.False(t, events.IsLegacyAdd())
	gotAdd, err := events.Add()
	require.NoError(t, err)
	require.Equal(t, add, gotAdd)

	remove := cache.RemoveEvent{Item: item, Node: atspi.NullObjectRef()}
	events, err = cache.FromMessageInterfaceChecked(remove.ToMessage())
	require.NoError(t, err)
	gotRemove, err := events.Remove()
	require.NoError(t, err)
	require.Equal(t, remove, gotRemove)
}

func TestFromMessageInterfaceCheckedUnknownMember(t *testing.T) {
	item := testObjectRef("root")
	msg := atspi.EncodeItemOnlyATSPI(item, cache.DBUSInterface, "NotARealMember")
	_, err := cache.FromMessageInterfaceChecked(msg)
	require.Error(t, err)
}

func TestEventsDelegatesToActiveVariant(t *testing.T) {
	item := testObjectRef("root")
	remove := cache.RemoveEvent{Item: item, Node: atspi.NullObjectRef()}
	events := cache.NewFromRemove(remove)

	require.Equal(t, cache.MemberRemoveAccessible, events.DBUSMember())
	require.Equal(t, cache.DBUSInterface, events.DBUSInterface())
	require.Equal(t, item.Path, events.Path())
	require.Equal(t, item.Name, events.Sender())
	require.NotEmpty(t, events.EventMatchRule())
	require.NotEmpty(t, events.RegistryEventString())
}
