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

package cache

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

const (
	// MemberAddAccessible is shared by both Add and LegacyAdd; they are
	// disambiguated by body signature, not by member name.
	MemberAddAccessible    = "AddAccessible"
	MemberRemoveAccessible = "RemoveAccessible"
)

// AddEvent is the modern Cache.AddAccessible signal.
type AddEvent struct {
	Item atspi.ObjectRef
	Node CacheItem
}

func (AddEvent) DBUSMember() string    { return MemberAddAccessible }
func (AddEvent) DBUSInterface() string { return DBUSInterface }
func (AddEvent) MatchRule() string     { return atspi.MemberMatchRule(DBUSInterface, MemberAddAccessible) }
func (AddEvent) RegistryEventString() string {
	return atspi.RegistryEventString("cache", "add")
}
func (e AddEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e AddEvent) Sender() string        { return e.Item.Name }

// AddEventFromMessageUnchecked decodes a Cache.AddAccessible message already
// known to carry the modern signature.
func AddEventFromMessageUnchecked(msg *dbus.Message) (AddEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return AddEvent{}, err
	}
	node, err := DecodeCacheItem(msg.Body)
	if err != nil {
		return AddEvent{}, err
	}
	return AddEvent{Item: item, Node: node}, nil
}

// AddEventFromMessage validates msg's interface and member headers before
// decoding as the modern signature; a legacy-signature message still passes
// this header check since both variants share MemberAddAccessible, and the
// signature mismatch then surfaces from DecodeCacheItem itself.
func AddEventFromMessage(msg *dbus.Message) (AddEvent, error) {
	return atspi.FromMessageChecked(msg, AddEventFromMessageUnchecked)
}

// ToMessage serializes e back to a modern Cache.AddAccessible signal.
func (e AddEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberAddAccessible, atspi.SigCacheAdd)
	return atspi.NewSignalMessage(headers, e.Node.ToRaw())
}

// LegacyAddEvent is the legacy (Qt-era) Cache.AddAccessible signal.
type LegacyAddEvent struct {
	Item atspi.ObjectRef
	Node LegacyCacheItem
}

func (LegacyAddEvent) DBUSMember() string    { return MemberAddAccessible }
func (LegacyAddEvent) DBUSInterface() string { return DBUSInterface }
func (LegacyAddEvent) MatchRule() string {
	return atspi.MemberMatchRule(DBUSInterface, MemberAddAccessible)
}
func (LegacyAddEvent) RegistryEventString() string {
	return atspi.RegistryEventString("cache", "add")
}
func (e LegacyAddEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e LegacyAddEvent) Sender() string        { return e.Item.Name }

// LegacyAddEventFromMessageUnchecked decodes a Cache.AddAccessible message
// already known to carry the legacy signature.
func LegacyAddEventFromMessageUnchecked(msg *dbus.Message) (LegacyAddEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return LegacyAddEvent{}, err
	}
	node, err := DecodeLegacyCacheItem(msg.Body)
	if err != nil {
		return LegacyAddEvent{}, err
	}
	return LegacyAddEvent{Item: item, Node: node}, nil
}

// LegacyAddEventFromMessage validates msg's interface and member headers
// before decoding as the legacy signature.
func LegacyAddEventFromMessage(msg *dbus.Message) (LegacyAddEvent, error) {
	return atspi.FromMessageChecked(msg, LegacyAddEventFromMessageUnchecked)
}

// ToMessage serializes e back to a legacy Cache.AddAccessible signal.
func (e LegacyAddEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberAddAccessible, atspi.SigCacheAddLegacy)
	return atspi.NewSignalMessage(headers, e.Node.ToRaw())
}

// RemoveEvent is the Cache.RemoveAccessible signal, carrying only the
// removed accessible's ObjectRef.
type RemoveEvent struct {
	Item atspi.ObjectRef
	Node atspi.ObjectRef
}

func (RemoveEvent) DBUSMember() string    { return MemberRemoveAccessible }
func (RemoveEvent) DBUSInterface() string { return DBUSInterface }
func (RemoveEvent) MatchRule() string {
	return atspi.MemberMatchRule(DBUSInterface, MemberRemoveAccessible)
}
func (RemoveEvent) RegistryEventString() string {
	return atspi.RegistryEventString("cache", "remove")
}
func (e RemoveEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e RemoveEvent) Sender() string        { return e.Item.Name }

// RemoveEventFromMessageUnchecked decodes a Cache.RemoveAccessible message.
func RemoveEventFromMessageUnchecked(msg *dbus.Message) (RemoveEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return RemoveEvent{}, err
	}
	if len(msg.Body) != 2 {
		return RemoveEvent{}, atspi.NewConversion("Cache.RemoveAccessible body must have 2 top-level values")
	}
	name, ok := msg.Body[0].(string)
	if !ok {
		return RemoveEvent{}, atspi.NewConversion("Cache.RemoveAccessible body field 0 is not a string")
	}
	path, ok := msg.Body[1].(dbus.ObjectPath)
	if !ok {
		return RemoveEvent{}, atspi.NewConversion("Cache.RemoveAccessible body field 1 is not an object path")
	}
	return RemoveEvent{Item: item, Node: atspi.ObjectRefFromPair(name, path)}, nil
}

// RemoveEventFromMessage validates msg's interface and member headers before
// decoding.
func RemoveEventFromMessage(msg *dbus.Message) (RemoveEvent, error) {
	return atspi.FromMessageChecked(msg, RemoveEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Cache.RemoveAccessible signal.
func (e RemoveEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberRemoveAccessible, atspi.SigObjectRefPair)
	return atspi.NewSignalMessage(headers, e.Node.Struct())
}

// Events is the tagged union over the three Cache payloads.
type Events struct {
	kind  eventKind
	add   AddEvent
	lAdd  LegacyAddEvent
	remov RemoveEvent
}

type eventKind int

const (
	kindNone eventKind = iota
	kindAdd
	kindLegacyAdd
	kindRemove
)

// MatchRule is the interface-wide Cache match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Cache registry subscription string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Cache") }

// NewFromAdd wraps a modern AddEvent into the Cache sum.
func NewFromAdd(e AddEvent) Events { return Events{kind: kindAdd, add: e} }

// NewFromLegacyAdd wraps a LegacyAddEvent into the Cache sum.
func NewFromLegacyAdd(e LegacyAddEvent) Events { return Events{kind: kindLegacyAdd, lAdd: e} }

// NewFromRemove wraps a RemoveEvent into the Cache sum.
func NewFromRemove(e RemoveEvent) Events { return Events{kind: kindRemove, remov: e} }

// Add projects the sum back to an AddEvent, failing with Conversion if the
// active variant is not Add.
func (e Events) Add() (AddEvent, error) {
	if e.kind != kindAdd {
		return AddEvent{}, atspi.NewConversion("Cache Events sum does not hold Add")
	}
	return e.add, nil
}

// LegacyAdd projects the sum back to a LegacyAddEvent.
func (e Events) LegacyAdd() (LegacyAddEvent, error) {
	if e.kind != kindLegacyAdd {
		return LegacyAddEvent{}, atspi.NewConversion("Cache Events sum does not hold LegacyAdd")
	}
	return e.lAdd, nil
}

// Remove projects the sum back to a RemoveEvent.
func (e Events) Remove() (RemoveEvent, error) {
	if e.kind != kindRemove {
		return RemoveEvent{}, atspi.NewConversion("Cache Events sum does not hold Remove")
	}
	return e.remov, nil
}

// IsLegacyAdd reports whether the active variant is the legacy add shape,
// for callers that branch on shape without extracting the payload.
func (e Events) IsLegacyAdd() bool { return e.kind == kindLegacyAdd }

// DBUSMember delegates to whichever concrete event is active.
func (e Events) DBUSMember() string {
	switch e.kind {
	case kindAdd:
		return e.add.DBUSMember()
	case kindLegacyAdd:
		return e.lAdd.DBUSMember()
	case kindRemove:
		return e.remov.DBUSMember()
	default:
		return ""
	}
}

// DBUSInterface delegates to whichever concrete event is active.
func (e Events) DBUSInterface() string { return DBUSInterface }

// EventMatchRule delegates to whichever concrete event is active.
func (e Events) EventMatchRule() string {
	switch e.kind {
	case kindAdd:
		return e.add.MatchRule()
	case kindLegacyAdd:
		return e.lAdd.MatchRule()
	case kindRemove:
		return e.remov.MatchRule()
	default:
		return ""
	}
}

// RegistryEventString delegates to whichever concrete event is active.
func (e Events) RegistryEventString() string {
	switch e.kind {
	case kindAdd:
		return e.add.RegistryEventString()
	case kindLegacyAdd:
		return e.lAdd.RegistryEventString()
	case kindRemove:
		return e.remov.RegistryEventString()
	default:
		return ""
	}
}

// Path delegates to whichever concrete event is active.
func (e Events) Path() dbus.ObjectPath {
	switch e.kind {
	case kindAdd:
		return e.add.Path()
	case kindLegacyAdd:
		return e.lAdd.Path()
	case kindRemove:
		return e.remov.Path()
	default:
		return ""
	}
}

// Sender delegates to whichever concrete event is active.
func (e Events) Sender() string {
	switch e.kind {
	case kindAdd:
		return e.add.Sender()
	case kindLegacyAdd:
		return e.lAdd.Sender()
	case kindRemove:
		return e.remov.Sender()
	default:
		return ""
	}
}

// FromMessageBySignature dispatches a Cache.AddAccessible message to Add or
// LegacyAdd by inspecting its body signature, the one interface sum that
// needs a signature-based tie-break alongside its member-based one
// (spec.md §4.4).
func FromMessageBySignature(msg *dbus.Message) (Events, error) {
	sig, ok := atspi.SignatureHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingSignature()
	}
	switch sig {
	case atspi.SigCacheAdd:
		e, err := AddEventFromMessageUnchecked(msg)
		if err != nil {
			return Events{}, err
		}
		return NewFromAdd(e), nil
	case atspi.SigCacheAddLegacy:
		e, err := LegacyAddEventFromMessageUnchecked(msg)
		if err != nil {
			return Events{}, err
		}
		return NewFromLegacyAdd(e), nil
	default:
		return Events{}, atspi.NewSignatureMatch(atspi.SigCacheAdd+" or "+atspi.SigCacheAddLegacy, sig)
	}
}

// FromMessage validates msg's interface header before dispatching by member.
func FromMessage(msg *dbus.Message) (Events, error) {
	if err := atspi.CheckInterface(msg, DBUSInterface); err != nil {
		return Events{}, err
	}
	return FromMessageInterfaceChecked(msg)
}

// FromMessageInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Cache, reading the member
// header and, for AddAccessible, the body signature.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberAddAccessible:
		return FromMessageBySignature(msg)
	case MemberRemoveAccessible:
		e, err := RemoveEventFromMessageUnchecked(msg)
		if err != nil {
			return Events{}, err
		}
		return NewFromRemove(e), nil
	default:
		return Events{}, atspi.NewUnknownSignal(member)
	}
}
