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

// Package focus implements the org.a11y.atspi.Event.Focus interface: the
// single, long-deprecated-but-still-emitted Focus signal. Most consumers
// should prefer Object.StateChanged with state "focused", but toolkits
// still emit this legacy signal alongside it.
package focus

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceFocus

const MemberFocus = "Focus"

// FocusEvent reports an accessible receiving focus.
type FocusEvent struct {
	Item atspi.ObjectRef
}

func (FocusEvent) DBUSMember() string    { return MemberFocus }
func (FocusEvent) DBUSInterface() string { return DBUSInterface }
func (FocusEvent) MatchRule() string {
	return atspi.MemberMatchRule(DBUSInterface, MemberFocus)
}
func (FocusEvent) RegistryEventString() string {
	return atspi.RegistryEventString("focus", "focus")
}
func (e FocusEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e FocusEvent) Sender() string        { return e.Item.Name }

// FocusEventFromMessageUnchecked decodes a Focus.Focus message.
func FocusEventFromMessageUnchecked(msg *dbus.Message) (FocusEvent, error) {
	item, err := atspi.DecodeItemOnly(msg)
	if err != nil {
		return FocusEvent{}, err
	}
	return FocusEvent{Item: item}, nil
}

// FocusEventFromMessage validates msg's interface and member headers before
// decoding.
func FocusEventFromMessage(msg *dbus.Message) (FocusEvent, error) {
	return atspi.FromMessageChecked(msg, FocusEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Focus.Focus signal.
func (e FocusEvent) ToMessage() *dbus.Message {
	return atspi.EncodeItemOnlyATSPI(e.Item, DBUSInterface, MemberFocus)
}

// Events is the tagged union over Focus's single concrete event, kept for
// uniformity with every other interface sum in the top-level dispatcher.
type Events struct {
	focus FocusEvent
	set   bool
}

// MatchRule is the interface-wide Focus match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Focus registry subscription string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Focus") }

func (e Events) DBUSMember() string         { return e.focus.DBUSMember() }
func (e Events) DBUSInterface() string       { return e.focus.DBUSInterface() }
func (e Events) EventMatchRule() string      { return e.focus.MatchRule() }
func (e Events) RegistryEventString() string { return e.focus.RegistryEventString() }
func (e Events) Path() dbus.ObjectPath       { return e.focus.Path() }
func (e Events) Sender() string              { return e.focus.Sender() }

// Focus projects the sum back to a FocusEvent.
func (e Events) Focus() (FocusEvent, error) {
	if !e.set {
		return FocusEvent{}, atspi.NewConversion("Focus Events sum does not hold Focus")
	}
	return e.focus, nil
}

// FromMessage validates msg's interface header before dispatching by member.
func FromMessage(msg *dbus.Message) (Events, error) {
	if err := atspi.CheckInterface(msg, DBUSInterface); err != nil {
		return Events{}, err
	}
	return FromMessageInterfaceChecked(msg)
}

// FromMessageInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Event.Focus.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	if member != MemberFocus {
		return Events{}, atspi.NewUnknownSignal(member)
	}
	e, err := FocusEventFromMessageUnchecked(msg)
	if err != nil {
		return Events{}, err
	}
	return Events{focus: e, set: true}, nil
}
