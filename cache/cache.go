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

// Package cache implements the org.a11y.atspi.Cache system interface: the
// three cache events (AddAccessible in its modern and legacy body shapes,
// RemoveAccessible) whose signatures fall outside the ATSPI/QSPI pattern.
package cache

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is the Cache system interface's D-Bus name.
const DBUSInterface = atspi.InterfaceCache

// Role is the accessible's numeric AT-SPI role, carried opaquely: the core
// decodes it as a typed integer but assigns it no semantic meaning, per
// spec.md's Non-goal "no interpretation of event payloads beyond typed
// decoding."
type Role uint32

// InterfaceSet is the set of AT-SPI interface names an accessible exposes,
// wire signature "as".
type InterfaceSet []string

// StateSet is the accessible's AT-SPI state bitfield, wire signature "au".
type StateSet []uint32

// CacheItem is the payload of a modern Cache.AddAccessible signal, wire
// signature "(so)(so)(so)iiassusau".
type CacheItem struct {
	Object     atspi.ObjectRef
	App        atspi.ObjectRef
	Parent     atspi.ObjectRef
	Index      int32
	ChildCount int32
	Interfaces InterfaceSet
	ShortName  string
	Role       Role
	Name       string
	States     StateSet
}

// LegacyCacheItem is the payload of a legacy (Qt-era) Cache.AddAccessible
// signal, wire signature "(so)(so)(so)a(so)assusau": it carries the full
// list of children rather than just a count.
type LegacyCacheItem struct {
	Object     atspi.ObjectRef
	App        atspi.ObjectRef
	Parent     atspi.ObjectRef
	Children   []atspi.ObjectRef
	Interfaces InterfaceSet
	ShortName  string
	Role       Role
	Name       string
	States     StateSet
}

func decodeRefVariant(raw interface{}) (atspi.ObjectRef, bool) {
	switch v := raw.(type) {
	case []interface{}:
		if len(v) != 2 {
			return atspi.ObjectRef{}, false
		}
		name, ok := v[0].(string)
		if !ok {
			return atspi.ObjectRef{}, false
		}
		path, ok := v[1].(dbus.ObjectPath)
		if !ok {
			return atspi.ObjectRef{}, false
		}
		return atspi.ObjectRefFromPair(name, path), true
	case dbus.Variant:
		ref, err := atspi.ObjectRefFromVariant(v)
		return ref, err == nil
	default:
		return atspi.ObjectRef{}, false
	}
}

func decodeStringSlice(raw interface{}) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeUint32Slice(raw interface{}) ([]uint32, bool) {
	switch v := raw.(type) {
	case []uint32:
		return v, true
	case []interface{}:
		out := make([]uint32, 0, len(v))
		for _, e := range v {
			u, ok := e.(uint32)
			if !ok {
				return nil, false
			}
			out = append(out, u)
		}
		return out, true
	default:
		return nil, false
	}
}

// DecodeCacheItem decodes a raw modern Cache.AddAccessible body (10
// top-level values matching "(so)(so)(so)iiassusau") into a CacheItem.
func DecodeCacheItem(raw []interface{}) (CacheItem, error) {
	if len(raw) != 10 {
		return CacheItem{}, atspi.NewConversion("CacheItem body must have 10 top-level values")
	}
	object, ok := decodeRefVariant(raw[0])
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.object is not (so)")
	}
	app, ok := decodeRefVariant(raw[1])
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.app is not (so)")
	}
	parent, ok := decodeRefVariant(raw[2])
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.parent is not (so)")
	}
	index, ok := raw[3].(int32)
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.index is not int32")
	}
	childCount, ok := raw[4].(int32)
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.children count is not int32")
	}
	ifaces, ok := decodeStringSlice(raw[5])
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.ifaces is not as")
	}
	shortName, ok := raw[6].(string)
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.short_name is not a string")
	}
	role, ok := raw[7].(uint32)
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.role is not uint32")
	}
	name, ok := raw[8].(string)
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.name is not a string")
	}
	states, ok := decodeUint32Slice(raw[9])
	if !ok {
		return CacheItem{}, atspi.NewConversion("CacheItem.states is not au")
	}
	return CacheItem{
		Object: object, App: app, Parent: parent,
		Index: index, ChildCount: childCount,
		Interfaces: InterfaceSet(ifaces), ShortName: shortName,
		Role: Role(role), Name: name, States: StateSet(states),
	}, nil
}

// ToRaw serializes a CacheItem back to its 10-element raw body.
func (c CacheItem) ToRaw() []interface{} {
	return []interface{}{
		c.Object.Struct(), c.App.Struct(), c.Parent.Struct(),
		c.Index, c.ChildCount, []string(c.Interfaces), c.ShortName,
		uint32(c.Role), c.Name, []uint32(c.States),
	}
}

// DecodeLegacyCacheItem decodes a raw legacy Cache.AddAccessible body (9
// top-level values matching "(so)(so)(so)a(so)assusau") into a
// LegacyCacheItem.
func DecodeLegacyCacheItem(raw []interface{}) (LegacyCacheItem, error) {
	if len(raw) != 9 {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem body must have 9 top-level values")
	}
	object, ok := decodeRefVariant(raw[0])
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.object is not (so)")
	}
	app, ok := decodeRefVariant(raw[1])
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.app is not (so)")
	}
	parent, ok := decodeRefVariant(raw[2])
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.parent is not (so)")
	}
	rawChildren, ok := raw[3].([]interface{})
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.children is not a(so)")
	}
	children := make([]atspi.ObjectRef, 0, len(rawChildren))
	for _, rc := range rawChildren {
		ref, ok := decodeRefVariant(rc)
		if !ok {
			return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.children element is not (so)")
		}
		children = append(children, ref)
	}
	ifaces, ok := decodeStringSlice(raw[4])
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.ifaces is not as")
	}
	shortName, ok := raw[5].(string)
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.short_name is not a string")
	}
	role, ok := raw[6].(uint32)
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.role is not uint32")
	}
	name, ok := raw[7].(string)
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.name is not a string")
	}
	states, ok := decodeUint32Slice(raw[8])
	if !ok {
		return LegacyCacheItem{}, atspi.NewConversion("LegacyCacheItem.states is not au")
	}
	return LegacyCacheItem{
		Object: object, App: app, Parent: parent, Children: children,
		Interfaces: InterfaceSet(ifaces), ShortName: shortName,
		Role: Role(role), Name: name, States: StateSet(states),
	}, nil
}

// ToRaw serializes a LegacyCacheItem back to its 9-element raw body.
func (c LegacyCacheItem) ToRaw() []interface{} {
	childStructs := make([]interface{}, 0, len(c.Children))
	for _, ch := range c.Children {
		childStructs = append(childStructs, ch.Struct())
	}
	return []interface{}{
		c.Object.Struct(), c.App.Struct(), c.Parent.Struct(), childStructs,
		[]string(c.Interfaces), c.ShortName, uint32(c.Role), c.Name, []uint32(c.States),
	}
}
