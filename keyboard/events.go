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

// Package keyboard implements the org.a11y.atspi.Event.Keyboard interface:
// the single Modifiers signal reporting a keyboard modifier mask change.
package keyboard

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceKeyboard

const MemberModifiers = "Modifiers"

// ModifiersEvent reports the active keyboard modifier mask changing from
// Previous to Current (e.g. Shift/Ctrl/Alt bit flags).
type ModifiersEvent struct {
	Item              atspi.ObjectRef
	PreviousModifiers int32
	CurrentModifiers  int32
}

func (ModifiersEvent) DBUSMember() string    { return MemberModifiers }
func (ModifiersEvent) DBUSInterface() string { return DBUSInterface }
func (ModifiersEvent) MatchRule() string {
	return atspi.MemberMatchRule(DBUSInterface, MemberModifiers)
}
func (ModifiersEvent) RegistryEventString() string {
	return atspi.RegistryEventString("keyboard", "modifiers")
}
func (e ModifiersEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e ModifiersEvent) Sender() string        { return e.Item.Name }

// ModifiersEventFromMessageUnchecked decodes a Keyboard.Modifiers message.
func ModifiersEventFromMessageUnchecked(msg *dbus.Message) (ModifiersEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return ModifiersEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return ModifiersEvent{}, err
	}
	return ModifiersEvent{Item: item, PreviousModifiers: body.Detail1, CurrentModifiers: body.Detail2}, nil
}

// ModifiersEventFromMessage validates msg's interface and member headers
// before decoding.
func ModifiersEventFromMessage(msg *dbus.Message) (ModifiersEvent, error) {
	return atspi.FromMessageChecked(msg, ModifiersEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Keyboard.Modifiers signal.
func (e ModifiersEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberModifiers, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Detail1: e.PreviousModifiers, Detail2: e.CurrentModifiers, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// Events is the tagged union over Keyboard's single concrete event. The
// package still models a sum (rather than exposing ModifiersEvent bare) so
// the top-level dispatcher's interface-sum contract stays uniform across
// every interface, including the ones with only one member.
type Events struct {
	modifiers ModifiersEvent
	set       bool
}

// MatchRule is the interface-wide Keyboard match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Keyboard registry subscription
// string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Keyboard") }

func (e Events) DBUSMember() string         { return e.modifiers.DBUSMember() }
func (e Events) DBUSInterface() string       { return e.modifiers.DBUSInterface() }
func (e Events) EventMatchRule() string      { return e.modifiers.MatchRule() }
func (e Events) RegistryEventString() string { return e.modifiers.RegistryEventString() }
func (e Events) Path() dbus.ObjectPath       { return e.modifiers.Path() }
func (e Events) Sender() string              { return e.modifiers.Sender() }

// Modifiers projects the sum back to a ModifiersEvent.
func (e Events) Modifiers() (ModifiersEvent, error) {
	if !e.set {
		return ModifiersEvent{}, atspi.NewConversion("Keyboard Events sum does not hold Modifiers")
	}
	return e.modifiers, nil
}

// FromMessage validates msg's interface header before dispatching by member.
func FromMessage(msg *dbus.Message) (Events, error) {
	if err := atspi.CheckInterface(msg, DBUSInterface); err != nil {
		return Events{}, err
	}
	return FromMessageInterfaceChecked(msg)
}

// FromMessageInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Event.Keyboard.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	if member != MemberModifiers {
		return Events{}, atspi.NewUnknownSignal(member)
	}
	e, err := ModifiersEventFromMessageUnchecked(msg)
	if err != nil {
		return Events{}, err
	}
	return Events{modifiers: e, set: true}, nil
}
