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

// Package document implements the org.a11y.atspi.Event.Document interface:
// the 6 item-only events a document (e.g. a web page or word-processor
// buffer) emits across loading and content-mutation.
package document

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceDocument

const (
	MemberLoadComplete     = "LoadComplete"
	MemberReload           = "Reload"
	MemberLoadStopped      = "LoadStopped"
	MemberContentChanged   = "ContentChanged"
	MemberAttributesChanged = "AttributesChanged"
	MemberPageChanged      = "PageChanged"
)

func matchRule(member string) string     { return atspi.MemberMatchRule(DBUSInterface, member) }
func registryString(kebab string) string { return atspi.RegistryEventString("document", kebab) }

// itemOnlyEvent is the shape shared by all 6 Document events.
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

// LoadCompleteEvent reports the document finishing loading.
type LoadCompleteEvent struct{ itemOnlyEvent }

func (LoadCompleteEvent) DBUSMember() string   { return MemberLoadComplete }
func (LoadCompleteEvent) DBUSInterface() string { return DBUSInterface }
func LoadCompleteEventFromMessageUnchecked(msg *dbus.Message) (LoadCompleteEvent, error) {
	e, err := decodeItemOnly(msg, MemberLoadComplete, "load-complete")
	return LoadCompleteEvent{e}, err
}

func LoadCompleteEventFromMessage(msg *dbus.Message) (LoadCompleteEvent, error) {
	return atspi.FromMessageChecked(msg, LoadCompleteEventFromMessageUnchecked)
}

// ReloadEvent reports the document being reloaded.
type ReloadEvent struct{ itemOnlyEvent }

func (ReloadEvent) DBUSMember() string   { return MemberReload }
func (ReloadEvent) DBUSInterface() string { return DBUSInterface }
func ReloadEventFromMessageUnchecked(msg *dbus.Message) (ReloadEvent, error) {
	e, err := decodeItemOnly(msg, MemberReload, "reload")
	return ReloadEvent{e}, err
}

func ReloadEventFromMessage(msg *dbus.Message) (ReloadEvent, error) {
	return atspi.FromMessageChecked(msg, ReloadEventFromMessageUnchecked)
}

// LoadStoppedEvent reports the document's load being stopped before
// completion.
type LoadStoppedEvent struct{ itemOnlyEvent }

func (LoadStoppedEvent) DBUSMember() string   { return MemberLoadStopped }
func (LoadStoppedEvent) DBUSInterface() string { return DBUSInterface }
func LoadStoppedEventFromMessageUnchecked(msg *dbus.Message) (LoadStoppedEvent, error) {
	e, err := decodeItemOnly(msg, MemberLoadStopped, "load-stopped")
	return LoadStoppedEvent{e}, err
}

func LoadStoppedEventFromMessage(msg *dbus.Message) (LoadStoppedEvent, error) {
	return atspi.FromMessageChecked(msg, LoadStoppedEventFromMessageUnchecked)
}

// ContentChangedEvent reports the document's content changing.
type ContentChangedEvent struct{ itemOnlyEvent }

func (ContentChangedEvent) DBUSMember() string   { return MemberContentChanged }
func (ContentChangedEvent) DBUSInterface() string { return DBUSInterface }
func ContentChangedEventFromMessageUnchecked(msg *dbus.Message) (ContentChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberContentChanged, "content-changed")
	return ContentChangedEvent{e}, err
}

func ContentChangedEventFromMessage(msg *dbus.Message) (ContentChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ContentChangedEventFromMessageUnchecked)
}

// AttributesChangedEvent reports the document's attribute set changing.
type AttributesChangedEvent struct{ itemOnlyEvent }

func (AttributesChangedEvent) DBUSMember() string   { return MemberAttributesChanged }
func (AttributesChangedEvent) DBUSInterface() string { return DBUSInterface }
func AttributesChangedEventFromMessageUnchecked(msg *dbus.Message) (AttributesChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberAttributesChanged, "attributes-changed")
	return AttributesChangedEvent{e}, err
}

func AttributesChangedEventFromMessage(msg *dbus.Message) (AttributesChangedEvent, error) {
	return atspi.FromMessageChecked(msg, AttributesChangedEventFromMessageUnchecked)
}

// PageChangedEvent reports the current page (within a paginated document)
// changing.
type PageChangedEvent struct{ itemOnlyEvent }

func (PageChangedEvent) DBUSMember() string   { return MemberPageChanged }
func (PageChangedEvent) DBUSInterface() string { return DBUSInterface }
func PageChangedEventFromMessageUnchecked(msg *dbus.Message) (PageChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberPageChanged, "page-changed")
	return PageChangedEvent{e}, err
}

func PageChangedEventFromMessage(msg *dbus.Message) (PageChangedEvent, error) {
	return atspi.FromMessageChecked(msg, PageChangedEventFromMessageUnchecked)
}

type properties interface {
	DBUSMember() string
	DBUSInterface() string
	MatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

// Events is the tagged union over all 6 Document concrete events.
type Events struct {
	payload properties
}

// MatchRule is the interface-wide Document match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Document registry subscription
// string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Document") }

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
// already been confirmed to be org.a11y.atspi.Event.Document.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberLoadComplete:
		e, err := LoadCompleteEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberReload:
		e, err := ReloadEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberLoadStopped:
		e, err := LoadStoppedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberContentChanged:
		e, err := ContentChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberAttributesChanged:
		e, err := AttributesChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberPageChanged:
		e, err := PageChangedEventFromMessageUnchecked(msg)
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
		return zero, atspi.NewConversion("Document Events sum does not hold the requested variant")
	}
	return v, nil
}

// LoadComplete projects the sum back to a LoadCompleteEvent.
func (e Events) LoadComplete() (LoadCompleteEvent, error) { return project[LoadCompleteEvent](e) }

// Reload projects the sum back to a ReloadEvent.
func (e Events) Reload() (ReloadEvent, error) { return project[ReloadEvent](e) }

// LoadStopped projects the sum back to a LoadStoppedEvent.
func (e Events) LoadStopped() (LoadStoppedEvent, error) { return project[LoadStoppedEvent](e) }

// ContentChanged projects the sum back to a ContentChangedEvent.
func (e Events) ContentChanged() (ContentChangedEvent, error) {
	return project[ContentChangedEvent](e)
}

// AttributesChanged projects the sum back to an AttributesChangedEvent.
func (e Events) AttributesChanged() (AttributesChangedEvent, error) {
	return project[AttributesChangedEvent](e)
}

// PageChanged projects the sum back to a PageChangedEvent.
func (e Events) PageChanged() (PageChangedEvent, error) { return project[PageChangedEvent](e) }
