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

// Package mouse implements the org.a11y.atspi.Event.Mouse interface: pointer
// motion and button-press/release events, all three shapes carrying a pair
// of screen coordinates in the body's detail1/detail2 slots.
package mouse

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceMouse

const (
	MemberAbs    = "Abs"
	MemberRel    = "Rel"
	MemberButton = "Button"
)

func matchRule(member string) string     { return atspi.MemberMatchRule(DBUSInterface, member) }
func registryString(kebab string) string { return atspi.RegistryEventString("mouse", kebab) }

// AbsEvent reports the pointer's absolute screen position.
type AbsEvent struct {
	Item atspi.ObjectRef
	X    int32
	Y    int32
}

func (AbsEvent) DBUSMember() string         { return MemberAbs }
func (AbsEvent) DBUSInterface() string       { return DBUSInterface }
func (AbsEvent) MatchRule() string           { return matchRule(MemberAbs) }
func (AbsEvent) RegistryEventString() string { return registryString("abs") }
func (e AbsEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e AbsEvent) Sender() string            { return e.Item.Name }

// AbsEventFromMessageUnchecked decodes a Mouse.Abs message.
func AbsEventFromMessageUnchecked(msg *dbus.Message) (AbsEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return AbsEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return AbsEvent{}, err
	}
	return AbsEvent{Item: item, X: body.Detail1, Y: body.Detail2}, nil
}

// AbsEventFromMessage validates msg's interface and member headers before
// decoding.
func AbsEventFromMessage(msg *dbus.Message) (AbsEvent, error) {
	return atspi.FromMessageChecked(msg, AbsEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Mouse.Abs signal.
func (e AbsEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberAbs, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Detail1: e.X, Detail2: e.Y, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// RelEvent reports the pointer's relative motion since its previous
// position.
type RelEvent struct {
	Item atspi.ObjectRef
	X    int32
	Y    int32
}

func (RelEvent) DBUSMember() string         { return MemberRel }
func (RelEvent) DBUSInterface() string       { return DBUSInterface }
func (RelEvent) MatchRule() string           { return matchRule(MemberRel) }
func (RelEvent) RegistryEventString() string { return registryString("rel") }
func (e RelEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e RelEvent) Sender() string            { return e.Item.Name }

// RelEventFromMessageUnchecked decodes a Mouse.Rel message.
func RelEventFromMessageUnchecked(msg *dbus.Message) (RelEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return RelEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return RelEvent{}, err
	}
	return RelEvent{Item: item, X: body.Detail1, Y: body.Detail2}, nil
}

// RelEventFromMessage validates msg's interface and member headers before
// decoding.
func RelEventFromMessage(msg *dbus.Message) (RelEvent, error) {
	return atspi.FromMessageChecked(msg, RelEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Mouse.Rel signal.
func (e RelEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberRel, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Detail1: e.X, Detail2: e.Y, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// ButtonEvent reports a mouse button press or release. Kind carries the
// button number followed by 'p' (pressed) or 'r' (released), e.g. "1p".
type ButtonEvent struct {
	Item   atspi.ObjectRef
	Kind   string
	MouseX int32
	MouseY int32
}

func (ButtonEvent) DBUSMember() string         { return MemberButton }
func (ButtonEvent) DBUSInterface() string       { return DBUSInterface }
func (ButtonEvent) MatchRule() string           { return matchRule(MemberButton) }
func (ButtonEvent) RegistryEventString() string { return registryString("button") }
func (e ButtonEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e ButtonEvent) Sender() string            { return e.Item.Name }

// ButtonEventFromMessageUnchecked decodes a Mouse.Button message.
func ButtonEventFromMessageUnchecked(msg *dbus.Message) (ButtonEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return ButtonEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return ButtonEvent{}, err
	}
	return ButtonEvent{Item: item, Kind: body.Kind, MouseX: body.Detail1, MouseY: body.Detail2}, nil
}

// ButtonEventFromMessage validates msg's interface and member headers before
// decoding.
func ButtonEventFromMessage(msg *dbus.Message) (ButtonEvent, error) {
	return atspi.FromMessageChecked(msg, ButtonEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Mouse.Button signal.
func (e ButtonEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberButton, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.Kind, Detail1: e.MouseX, Detail2: e.MouseY, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

type properties interface {
	DBUSMember() string
	DBUSInterface() string
	MatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

// Events is the tagged union over all 3 Mouse concrete events.
type Events struct {
	payload properties
}

// MatchRule is the interface-wide Mouse match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Mouse registry subscription string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Mouse") }

func (e Events) DBUSMember() string         { return e.payload.DBUSMember() }
func (e Events) DBUSInterface() string       { return e.payload.DBUSInterface() }
func (e Events) EventMatchRule() string      { return e.payload.MatchRule() }
func (e Events) RegistryEventString() string { return e.payload.RegistryEventString() }
func (e Events) Path() dbus.ObjectPath       { return e.payload.Path() }
func (e Events) Sender() string              { return e.payload.Sender() }

// FromMessage validates msg's interface header before dispatching by member.
func FromMessage(msg *dbus.Message) (Events, error) {
	if err := atspi.CheckInterface(msg, DBUSInterface); err != nil {
		return Events{}, err
	}
	return FromMessageInterfaceChecked(msg)
}

// FromMessageInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Event.Mouse.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberAbs:
		e, err := AbsEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRel:
		e, err := RelEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberButton:
		e, err := ButtonEventFromMessageUnchecked(msg)
		return wrap(e, err)
	default:
		return Events{}, atspi.NewUnknownSignal(member)
	}
}

func wrap[T properties](e T, err error) (Events, error) {
	if err != nil {
		return Events{}, err
	}
	return Events{payload: e}, nil
}

func project[T properties](e Events) (T, error) {
	v, ok := e.payload.(T)
	if !ok {
		var zero T
		return zero, atspi.NewConversion("Mouse Events sum does not hold the requested variant")
	}
	return v, nil
}

// Abs projects the sum back to an AbsEvent.
func (e Events) Abs() (AbsEvent, error) { return project[AbsEvent](e) }

// Rel projects the sum back to a RelEvent.
func (e Events) Rel() (RelEvent, error) { return project[RelEvent](e) }

// Button projects the sum back to a ButtonEvent.
func (e Events) Button() (ButtonEvent, error) { return project[ButtonEvent](e) }
