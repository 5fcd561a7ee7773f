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

// Package terminal implements the org.a11y.atspi.Event.Terminal interface:
// the 5 item-only events a terminal emulator emits for line, dimension and
// application changes.
package terminal

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceTerminal

// Member name constants. ColumncountChanged, LinecountChanged and
// CharwidthChanged preserve the reference implementation's lowercase
// mid-word 'c'/'w' verbatim; these are the genuine at-spi2-core wire
// spellings, not typos.
const (
	MemberLineChanged         = "LineChanged"
	MemberColumncountChanged  = "ColumncountChanged"
	MemberLinecountChanged    = "LinecountChanged"
	MemberApplicationChanged  = "ApplicationChanged"
	MemberCharwidthChanged    = "CharwidthChanged"
)

func matchRule(member string) string     { return atspi.MemberMatchRule(DBUSInterface, member) }
func registryString(kebab string) string { return atspi.RegistryEventString("terminal", kebab) }

// itemOnlyEvent is the shape shared by all 5 Terminal events, none of which
// carry a field beyond their emitter.
type itemOnlyEvent struct {
	Item   atspi.ObjectRef
	member string
	kebab  string
}

func (e itemOnlyEvent) Path() dbus.ObjectPath       { return e.Item.Path }
func (e itemOnlyEvent) Sender() string              { return e.Item.Name }
func (e itemOnlyEvent) MatchRule() string           { return matchRule(e.member) }
func (e itemOnlyEvent) RegistryEventString() string { return registryString(e.kebab) }

func decodeItemOnly(msg *dbus.Message, member, kebab string) (itemOnlyEvent, error) {
	item, err := atspi.DecodeItemOnly(msg)
	if err != nil {
		return itemOnlyEvent{}, err
	}
	return itemOnlyEvent{Item: item, member: member, kebab: kebab}, nil
}

func (e itemOnlyEvent) ToMessage() *dbus.Message {
	return atspi.EncodeItemOnlyATSPI(e.Item, DBUSInterface, e.member)
}

// LineChangedEvent reports a terminal line's content changing.
type LineChangedEvent struct{ itemOnlyEvent }

func (LineChangedEvent) DBUSMember() string   { return MemberLineChanged }
func (LineChangedEvent) DBUSInterface() string { return DBUSInterface }
func LineChangedEventFromMessageUnchecked(msg *dbus.Message) (LineChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberLineChanged, "line-changed")
	return LineChangedEvent{e}, err
}

func LineChangedEventFromMessage(msg *dbus.Message) (LineChangedEvent, error) {
	return atspi.FromMessageChecked(msg, LineChangedEventFromMessageUnchecked)
}

// ColumnCountChangedEvent reports the terminal's column count changing.
type ColumnCountChangedEvent struct{ itemOnlyEvent }

func (ColumnCountChangedEvent) DBUSMember() string   { return MemberColumncountChanged }
func (ColumnCountChangedEvent) DBUSInterface() string { return DBUSInterface }
func ColumnCountChangedEventFromMessageUnchecked(msg *dbus.Message) (ColumnCountChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberColumncountChanged, "columncount-changed")
	return ColumnCountChangedEvent{e}, err
}

func ColumnCountChangedEventFromMessage(msg *dbus.Message) (ColumnCountChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ColumnCountChangedEventFromMessageUnchecked)
}

// LineCountChangedEvent reports the terminal's line count changing.
type LineCountChangedEvent struct{ itemOnlyEvent }

func (LineCountChangedEvent) DBUSMember() string   { return MemberLinecountChanged }
func (LineCountChangedEvent) DBUSInterface() string { return DBUSInterface }
func LineCountChangedEventFromMessageUnchecked(msg *dbus.Message) (LineCountChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberLinecountChanged, "linecount-changed")
	return LineCountChangedEvent{e}, err
}

func LineCountChangedEventFromMessage(msg *dbus.Message) (LineCountChangedEvent, error) {
	return atspi.FromMessageChecked(msg, LineCountChangedEventFromMessageUnchecked)
}

// ApplicationChangedEvent reports the application running within the
// terminal changing.
type ApplicationChangedEvent struct{ itemOnlyEvent }

func (ApplicationChangedEvent) DBUSMember() string   { return MemberApplicationChanged }
func (ApplicationChangedEvent) DBUSInterface() string { return DBUSInterface }
func ApplicationChangedEventFromMessageUnchecked(msg *dbus.Message) (ApplicationChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberApplicationChanged, "application-changed")
	return ApplicationChangedEvent{e}, err
}

func ApplicationChangedEventFromMessage(msg *dbus.Message) (ApplicationChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ApplicationChangedEventFromMessageUnchecked)
}

// CharWidthChangedEvent reports the terminal's character cell width
// changing.
type CharWidthChangedEvent struct{ itemOnlyEvent }

func (CharWidthChangedEvent) DBUSMember() string   { return MemberCharwidthChanged }
func (CharWidthChangedEvent) DBUSInterface() string { return DBUSInterface }
func CharWidthChangedEventFromMessageUnchecked(msg *dbus.Message) (CharWidthChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberCharwidthChanged, "charwidth-changed")
	return CharWidthChangedEvent{e}, err
}

func CharWidthChangedEventFromMessage(msg *dbus.Message) (CharWidthChangedEvent, error) {
	return atspi.FromMessageChecked(msg, CharWidthChangedEventFromMessageUnchecked)
}

type properties interface {
	DBUSMember() string
	DBUSInterface() string
	MatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

// Events is the tagged union over all 5 Terminal concrete events.
type Events struct {
	payload properties
}

// MatchRule is the interface-wide Terminal match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Terminal registry subscription
// string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Terminal") }

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
// already been confirmed to be org.a11y.atspi.Event.Terminal.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberLineChanged:
		e, err := LineChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberColumncountChanged:
		e, err := ColumnCountChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberLinecountChanged:
		e, err := LineCountChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberApplicationChanged:
		e, err := ApplicationChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberCharwidthChanged:
		e, err := CharWidthChangedEventFromMessageUnchecked(msg)
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
		return zero, atspi.NewConversion("Terminal Events sum does not hold the requested variant")
	}
	return v, nil
}

// LineChanged projects the sum back to a LineChangedEvent.
func (e Events) LineChanged() (LineChangedEvent, error) { return project[LineChangedEvent](e) }

// ColumnCountChanged projects the sum back to a ColumnCountChangedEvent.
func (e Events) ColumnCountChanged() (ColumnCountChangedEvent, error) {
	return project[ColumnCountChangedEvent](e)
}

// LineCountChanged projects the sum back to a LineCountChangedEvent.
func (e Events) LineCountChanged() (LineCountChangedEvent, error) {
	return project[LineCountChangedEvent](e)
}

// ApplicationChanged projects the sum back to an ApplicationChangedEvent.
func (e Events) ApplicationChanged() (ApplicationChangedEvent, error) {
	return project[ApplicationChangedEvent](e)
}

// CharWidthChanged projects the sum back to a CharWidthChangedEvent.
func (e Events) CharWidthChanged() (CharWidthChangedEvent, error) {
	return project[CharWidthChangedEvent](e)
}
