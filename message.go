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

// The set of body signatures the top-level dispatcher distinguishes between,
// with outer parentheses stripped per spec.md's convention for a
// whole-body signature (a struct nested inside one, like an ObjectRef
// embedded in a CacheItem, keeps its parentheses).
const (
	SigATSPIEvent     = "siiva{sv}"
	SigQSPIEvent       = "siiv(so)"
	SigListenerPair    = "ss"
	SigCacheAdd        = "(so)(so)(so)iiassusau"
	SigCacheAddLegacy  = "(so)(so)(so)a(so)assusau"
)

// MemberHeader, InterfaceHeader, SignatureHeader, PathHeader and
// SenderHeader read the matching header field off a raw message, reporting
// whether it was present at all -- a missing field is not itself an error
// here, callers decide which Kind applies at their call site (MissingMember,
// MissingInterface, MissingSignature, ...).
func MemberHeader(msg *dbus.Message) (string, bool)    { return stringHeader(msg, dbus.FieldMember) }
func InterfaceHeader(msg *dbus.Message) (string, bool) { return stringHeader(msg, dbus.FieldInterface) }
func SignatureHeader(msg *dbus.Message) (string, bool) { return signatureHeader(msg) }
func PathHeader(msg *dbus.Message) (dbus.ObjectPath, bool) { return pathHeader(msg, dbus.FieldPath) }
func SenderHeader(msg *dbus.Message) (string, bool)    { return stringHeader(msg, dbus.FieldSender) }

func stringHeader(msg *dbus.Message, field dbus.HeaderField) (string, bool) {
	v, ok := msg.Headers[field]
	if !ok {
		return "", false
	}
	s, ok := v.Value().(string)
	return s, ok
}

func pathHeader(msg *dbus.Message, field dbus.HeaderField) (dbus.ObjectPath, bool) {
	v, ok := msg.Headers[field]
	if !ok {
		return "", false
	}
	p, ok := v.Value().(dbus.ObjectPath)
	return p, ok
}

// signatureHeader reads the FieldSignature header and renders it back to its
// string form (godbus stores it as a dbus.Signature).
func signatureHeader(msg *dbus.Message) (string, bool) {
	v, ok := msg.Headers[dbus.FieldSignature]
	if !ok {
		return "", false
	}
	sig, ok := v.Value().(dbus.Signature)
	if !ok {
		return "", false
	}
	return sig.String(), true
}

// NewSignalHeaders assembles the header map for an outbound signal message:
// path, interface, member and signature, plus the event's emitting bus name
// as the sender so a round-tripped message reproduces the original header
// trio exactly (spec.md §4.5's round-trip property).
func NewSignalHeaders(item ObjectRef, iface, member, signature string) map[dbus.HeaderField]dbus.Variant {
	h := map[dbus.HeaderField]dbus.Variant{
		dbus.FieldPath:      dbus.MakeVariant(item.Path),
		dbus.FieldInterface: dbus.MakeVariant(iface),
		dbus.FieldMember:    dbus.MakeVariant(member),
		dbus.FieldSignature: dbus.MakeVariant(dbus.ParseSignatureMust(signature)),
	}
	if item.Name != "" {
		h[dbus.FieldSender] = dbus.MakeVariant(item.Name)
	}
	return h
}

// NewSignalMessage builds a complete *dbus.Message for a signal with the
// given headers and body, matching the shape every concrete event's
// ToMessage method emits.
func NewSignalMessage(headers map[dbus.HeaderField]dbus.Variant, body []interface{}) *dbus.Message {
	return &dbus.Message{
		Type:    dbus.TypeSignal,
		Flags:   dbus.FlagNoReplyExpected,
		Headers: headers,
		Body:    body,
	}
}
