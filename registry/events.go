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

// Package registry implements the org.a11y.atspi.Registry and
// org.a11y.atspi.Socket system interfaces: the two event-listener
// (de)registration signals and the Socket.Available announcement signal.
// They share this package because the reference implementation's registry
// module defines all three together (registry.rs nests the socket module
// inside it) even though they are technically two distinct D-Bus interfaces.
package registry

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

const (
	MemberEventListenerRegistered   = "EventListenerRegistered"
	MemberEventListenerDeregistered = "EventListenerDeregistered"
	MemberAvailable                 = "Available"
)

// ListenerPair identifies a registered event listener: the bus name that
// registered interest and the registry event string it registered for. Wire
// signature "(ss)" -- both fields are plain strings, not object paths.
type ListenerPair struct {
	BusName string
	Path    string
}

func decodeListenerPair(raw []interface{}) (ListenerPair, error) {
	if len(raw) != 2 {
		return ListenerPair{}, atspi.NewConversion("listener pair body must have 2 top-level values")
	}
	busName, ok := raw[0].(string)
	if !ok {
		return ListenerPair{}, atspi.NewConversion("listener pair field 0 is not a string")
	}
	path, ok := raw[1].(string)
	if !ok {
		return ListenerPair{}, atspi.NewConversion("listener pair field 1 is not a string")
	}
	return ListenerPair{BusName: busName, Path: path}, nil
}

func (p ListenerPair) toRaw() []interface{} { return []interface{}{p.BusName, p.Path} }

// RegisteredEvent is the Registry.EventListenerRegistered signal.
type RegisteredEvent struct {
	Item     atspi.ObjectRef
	Listener ListenerPair
}

func (RegisteredEvent) DBUSMember() string    { return MemberEventListenerRegistered }
func (RegisteredEvent) DBUSInterface() string { return atspi.InterfaceRegistry }
func (RegisteredEvent) MatchRule() string {
	return atspi.MemberMatchRule(atspi.InterfaceRegistry, MemberEventListenerRegistered)
}

// RegistryEventString is "registry:event-listener-registered", a string
// invented by this implementation's ancestor repo for symmetry: the
// reference at-spi2-registryd does not document a registry string for its
// own meta-signals, so no canonical upstream value exists to match.
func (RegisteredEvent) RegistryEventString() string {
	return atspi.RegistryEventString("registry", "event-listener-registered")
}
func (e RegisteredEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e RegisteredEvent) Sender() string        { return e.Item.Name }

// RegisteredEventFromMessageUnchecked decodes a registered-listener message.
func RegisteredEventFromMessageUnchecked(msg *dbus.Message) (RegisteredEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return RegisteredEvent{}, err
	}
	pair, err := decodeListenerPair(msg.Body)
	if err != nil {
		return RegisteredEvent{}, err
	}
	return RegisteredEvent{Item: item, Listener: pair}, nil
}

// RegisteredEventFromMessage validates msg's interface and member headers
// before decoding.
func RegisteredEventFromMessage(msg *dbus.Message) (RegisteredEvent, error) {
	return atspi.FromMessageChecked(msg, RegisteredEventFromMessageUnchecked)
}

// ToMessage serializes e back to an EventListenerRegistered signal.
func (e RegisteredEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, atspi.InterfaceRegistry, MemberEventListenerRegistered, atspi.SigListenerPair)
	return atspi.NewSignalMessage(headers, e.Listener.toRaw())
}

// DeregisteredEvent is the Registry.EventListenerDeregistered signal.
type DeregisteredEvent struct {
	Item     atspi.ObjectRef
	Listener ListenerPair
}

func (DeregisteredEvent) DBUSMember() string    { return MemberEventListenerDeregistered }
func (DeregisteredEvent) DBUSInterface() string { return atspi.InterfaceRegistry }
func (DeregisteredEvent) MatchRule() string {
	return atspi.MemberMatchRule(atspi.InterfaceRegistry, MemberEventListenerDeregistered)
}
func (DeregisteredEvent) RegistryEventString() string {
	return atspi.RegistryEventString("registry", "event-listener-deregistered")
}
func (e DeregisteredEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e DeregisteredEvent) Sender() string        { return e.Item.Name }

// DeregisteredEventFromMessageUnchecked decodes a deregistered-listener
// message.
func DeregisteredEventFromMessageUnchecked(msg *dbus.Message) (DeregisteredEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return DeregisteredEvent{}, err
	}
	pair, err := decodeListenerPair(msg.Body)
	if err != nil {
		return DeregisteredEvent{}, err
	}
	return DeregisteredEvent{Item: item, Listener: pair}, nil
}

// DeregisteredEventFromMessage validates msg's interface and member headers
// before decoding.
func DeregisteredEventFromMessage(msg *dbus.Message) (DeregisteredEvent, error) {
	return atspi.FromMessageChecked(msg, DeregisteredEventFromMessageUnchecked)
}

// ToMessage serializes e back to an EventListenerDeregistered signal.
func (e DeregisteredEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, atspi.InterfaceRegistry, MemberEventListenerDeregistered, atspi.SigListenerPair)
	return atspi.NewSignalMessage(headers, e.Listener.toRaw())
}

// ListenerEvents is the tagged union over Registered and Deregistered.
type ListenerEvents struct {
	deregistered bool
	registered   RegisteredEvent
	dereg        DeregisteredEvent
	set          bool
}

// NewFromRegistered wraps a RegisteredEvent into the sum.
func NewFromRegistered(e RegisteredEvent) ListenerEvents {
	return ListenerEvents{registered: e, set: true}
}

// NewFromDeregistered wraps a DeregisteredEvent into the sum.
func NewFromDeregistered(e DeregisteredEvent) ListenerEvents {
	return ListenerEvents{dereg: e, deregistered: true, set: true}
}

// Registered projects the sum back to a RegisteredEvent.
func (e ListenerEvents) Registered() (RegisteredEvent, error) {
	if !e.set || e.deregistered {
		return RegisteredEvent{}, atspi.NewConversion("Listener Events sum does not hold Registered")
	}
	return e.registered, nil
}

// Deregistered projects the sum back to a DeregisteredEvent.
func (e ListenerEvents) Deregistered() (DeregisteredEvent, error) {
	if !e.set || !e.deregistered {
		return DeregisteredEvent{}, atspi.NewConversion("Listener Events sum does not hold Deregistered")
	}
	return e.dereg, nil
}

// DBUSMember delegates to whichever concrete event is active.
func (e ListenerEvents) DBUSMember() string {
	if !e.set {
		return ""
	}
	if e.deregistered {
		return e.dereg.DBUSMember()
	}
	return e.registered.DBUSMember()
}

// DBUSInterface delegates to whichever concrete event is active.
func (e ListenerEvents) DBUSInterface() string { return atspi.InterfaceRegistry }

// EventMatchRule delegates to whichever concrete event is active.
func (e ListenerEvents) EventMatchRule() string {
	if !e.set {
		return ""
	}
	if e.deregistered {
		return e.dereg.MatchRule()
	}
	return e.registered.MatchRule()
}

// RegistryEventString delegates to whichever concrete event is active.
func (e ListenerEvents) RegistryEventString() string {
	if !e.set {
		return ""
	}
	if e.deregistered {
		return e.dereg.RegistryEventString()
	}
	return e.registered.RegistryEventString()
}

// Path delegates to whichever concrete event is active.
func (e ListenerEvents) Path() dbus.ObjectPath {
	if !e.set {
		return ""
	}
	if e.deregistered {
		return e.dereg.Path()
	}
	return e.registered.Path()
}

// Sender delegates to whichever concrete event is active.
func (e ListenerEvents) Sender() string {
	if !e.set {
		return ""
	}
	if e.deregistered {
		return e.dereg.Sender()
	}
	return e.registered.Sender()
}

// FromMessage validates msg's interface header as org.a11y.atspi.Registry
// before dispatching by member.
func FromMessage(msg *dbus.Message) (ListenerEvents, error) {
	if err := atspi.CheckInterface(msg, atspi.InterfaceRegistry); err != nil {
		return ListenerEvents{}, err
	}
	return FromMessageInterfaceChecked(msg)
}

// FromMessageInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Registry: the dispatcher
// tries Registered first, then Deregistered, then fails with UnknownSignal
// (spec.md §8, "boundary behaviors").
func FromMessageInterfaceChecked(msg *dbus.Message) (ListenerEvents, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return ListenerEvents{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberEventListenerRegistered:
		e, err := RegisteredEventFromMessageUnchecked(msg)
		if err != nil {
			return ListenerEvents{}, err
		}
		return NewFromRegistered(e), nil
	case MemberEventListenerDeregistered:
		e, err := DeregisteredEventFromMessageUnchecked(msg)
		if err != nil {
			return ListenerEvents{}, err
		}
		return NewFromDeregistered(e), nil
	default:
		return ListenerEvents{}, atspi.NewUnknownSignal(member)
	}
}

// AvailableEvent is the Socket.Available signal, unconditionally emitted by
// the registry daemon once at startup, carrying the daemon's own ObjectRef
// as the socket consumers should address further requests to.
type AvailableEvent struct {
	Item   atspi.ObjectRef
	Socket atspi.ObjectRef
}

func (AvailableEvent) DBUSMember() string    { return MemberAvailable }
func (AvailableEvent) DBUSInterface() string { return atspi.InterfaceSocket }
func (AvailableEvent) MatchRule() string {
	return atspi.MemberMatchRule(atspi.InterfaceSocket, MemberAvailable)
}

// EventMatchRule aliases MatchRule so AvailableEvent satisfies the same
// delegating-accessor shape every interface sum's Events type exposes.
func (e AvailableEvent) EventMatchRule() string { return e.MatchRule() }

// RegistryEventString is the empty string: Socket.Available is
// unconditionally emitted and was never meant to be subscribed to via the
// registry string mechanism.
func (AvailableEvent) RegistryEventString() string { return "" }
func (e AvailableEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e AvailableEvent) Sender() string            { return e.Item.Name }

// AvailableEventFromMessageUnchecked decodes a Socket.Available message.
func AvailableEventFromMessageUnchecked(msg *dbus.Message) (AvailableEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return AvailableEvent{}, err
	}
	if len(msg.Body) != 2 {
		return AvailableEvent{}, atspi.NewConversion("Socket.Available body must have 2 top-level values")
	}
	name, ok := msg.Body[0].(string)
	if !ok {
		return AvailableEvent{}, atspi.NewConversion("Socket.Available body field 0 is not a string")
	}
	path, ok := msg.Body[1].(dbus.ObjectPath)
	if !ok {
		return AvailableEvent{}, atspi.NewConversion("Socket.Available body field 1 is not an object path")
	}
	return AvailableEvent{Item: item, Socket: atspi.ObjectRefFromPair(name, path)}, nil
}

// AvailableEventFromMessage validates msg's interface and member headers
// before decoding.
func AvailableEventFromMessage(msg *dbus.Message) (AvailableEvent, error) {
	return atspi.FromMessageChecked(msg, AvailableEventFromMessageUnchecked)
}

// ToMessage serializes e back to a Socket.Available signal.
func (e AvailableEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, atspi.InterfaceSocket, MemberAvailable, atspi.SigObjectRefPair)
	return atspi.NewSignalMessage(headers, e.Socket.Struct())
}

// FromMessageSocket validates msg's interface header as org.a11y.atspi.Socket
// before dispatching by member.
func FromMessageSocket(msg *dbus.Message) (AvailableEvent, error) {
	if err := atspi.CheckInterface(msg, atspi.InterfaceSocket); err != nil {
		return AvailableEvent{}, err
	}
	return FromMessageSocketInterfaceChecked(msg)
}

// FromMessageSocketInterfaceChecked dispatches a message whose interface has
// already been confirmed to be org.a11y.atspi.Socket.
func FromMessageSocketInterfaceChecked(msg *dbus.Message) (AvailableEvent, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return AvailableEvent{}, atspi.NewMissingMember()
	}
	if member != MemberAvailable {
		return AvailableEvent{}, atspi.NewUnknownSignal(member)
	}
	return AvailableEventFromMessageUnchecked(msg)
}
