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

package atspi

import (
	"github.com/godbus/dbus/v5"
)

// NullBusName is the distinguished bus-unique name used when a sender omits
// identity.
const NullBusName = ":0.0"

// NullPath is the distinguished object path paired with NullBusName.
const NullPath dbus.ObjectPath = "/org/a11y/atspi/accessible/null"

// SigObjectRefPair is the marshalled signature of an ObjectRef, with the
// outer parentheses stripped as a body-level signature (used for Cache.Remove
// and Socket.Available dispatch); SigObjectRefStruct is the same shape with
// parentheses, used when a struct appears nested inside a larger signature.
const (
	SigObjectRefPair   = "so"
	SigObjectRefStruct = "(so)"
)

// ObjectRef is the universal who/where pair identifying any accessible: a
// D-Bus unique bus name and the object path within that process. It is a
// plain comparable struct of two strings, so it is usable directly as a map
// key and its equality is already structural without a bespoke method.
type ObjectRef struct {
	Name string
	Path dbus.ObjectPath
}

// NullObjectRef returns the default reference used when no sender can be
// attributed: name ":0.0", path "/org/a11y/atspi/accessible/null".
func NullObjectRef() ObjectRef {
	return ObjectRef{Name: NullBusName, Path: NullPath}
}

// ObjectRefFromPair builds an ObjectRef from an already-decoded (name, path)
// pair, as found nested inside a larger struct such as a CacheItem.
func ObjectRefFromPair(name string, path dbus.ObjectPath) ObjectRef {
	return ObjectRef{Name: name, Path: path}
}

// ObjectRefFromVariant projects an ObjectRef out of a Variant wrapping a
// structure of signature (so). Any other signature fails with Conversion
// naming the signature actually found.
func ObjectRefFromVariant(v dbus.Variant) (ObjectRef, error) {
	sig := v.Signature().String()
	if sig != SigObjectRefStruct {
		return ObjectRef{}, NewConversion("expected Variant of signature (so), got " + sig)
	}
	fields, ok := v.Value().([]interface{})
	if !ok || len(fields) != 2 {
		return ObjectRef{}, NewConversion("malformed (so) structure")
	}
	name, ok := fields[0].(string)
	if !ok {
		return ObjectRef{}, NewConversion("(so) field 0 is not a string")
	}
	path, ok := fields[1].(dbus.ObjectPath)
	if !ok {
		return ObjectRef{}, NewConversion("(so) field 1 is not an object path")
	}
	return ObjectRef{Name: name, Path: path}, nil
}

// Variant wraps the ObjectRef back up as a Variant of signature (so).
func (o ObjectRef) Variant() dbus.Variant {
	return dbus.MakeVariantWithSignature(o.Struct(), dbus.ParseSignatureMust(SigObjectRefStruct))
}

// Struct returns the ObjectRef as the two-element slice godbus expects when
// marshalling a (so) structure as part of a message body.
func (o ObjectRef) Struct() []interface{} {
	return []interface{}{o.Name, o.Path}
}

// ObjectRefFromHeader extracts an ObjectRef from a message's sender and path
// headers. The sender is required; a message lacking it fails. The path is
// expected to be present (reference servers always set it) but, absent one,
// the null path is substituted rather than failing — only sender identity is
// load-bearing for who emitted the signal.
func ObjectRefFromHeader(msg *dbus.Message) (ObjectRef, error) {
	sender, ok := stringHeader(msg, dbus.FieldSender)
	if !ok || sender == "" {
		return ObjectRef{}, NewConversion("message header carries no sender")
	}
	path, ok := pathHeader(msg, dbus.FieldPath)
	if !ok {
		path = NullPath
	}
	return ObjectRef{Name: sender, Path: path}, nil
}
