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

// Package object implements the org.a11y.atspi.Event.Object interface: the
// 22 concrete events an accessible object itself can emit, from property
// and state changes to text and table mutations.
package object

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceObject

// Member name constants, one per concrete event.
const (
	MemberPropertyChange         = "PropertyChange"
	MemberBoundsChanged          = "BoundsChanged"
	MemberLinkSelected           = "LinkSelected"
	MemberStateChanged           = "StateChanged"
	MemberChildrenChanged        = "ChildrenChanged"
	MemberVisibleDataChanged     = "VisibleDataChanged"
	MemberSelectionChanged       = "SelectionChanged"
	MemberModelChanged           = "ModelChanged"
	MemberActiveDescendantChanged = "ActiveDescendantChanged"
	MemberAnnouncement           = "Announcement"
	MemberAttributesChanged      = "AttributesChanged"
	MemberRowInserted            = "RowInserted"
	MemberRowReordered           = "RowReordered"
	MemberRowDeleted             = "RowDeleted"
	MemberColumnInserted         = "ColumnInserted"
	MemberColumnReordered        = "ColumnReordered"
	MemberColumnDeleted          = "ColumnDeleted"
	MemberTextBoundsChanged      = "TextBoundsChanged"
	MemberTextSelectionChanged   = "TextSelectionChanged"
	MemberTextChanged            = "TextChanged"
	MemberTextAttributesChanged  = "TextAttributesChanged"
	MemberTextCaretMoved         = "TextCaretMoved"
)

func matchRule(member string) string { return atspi.MemberMatchRule(DBUSInterface, member) }
func registryString(kebab string) string { return atspi.RegistryEventString("object", kebab) }

// PropertyChangeEvent reports that a named property on item changed; Value
// carries the new value when the server provides one.
type PropertyChangeEvent struct {
	Item     atspi.ObjectRef
	Property string
	Value    dbus.Variant
}

func (PropertyChangeEvent) DBUSMember() string         { return MemberPropertyChange }
func (PropertyChangeEvent) DBUSInterface() string       { return DBUSInterface }
func (PropertyChangeEvent) MatchRule() string           { return matchRule(MemberPropertyChange) }
func (PropertyChangeEvent) RegistryEventString() string { return registryString("property-change") }
func (e PropertyChangeEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e PropertyChangeEvent) Sender() string            { return e.Item.Name }

// PropertyChangeEventFromMessageUnchecked decodes a PropertyChange message.
func PropertyChangeEventFromMessageUnchecked(msg *dbus.Message) (PropertyChangeEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return PropertyChangeEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return PropertyChangeEvent{}, err
	}
	return PropertyChangeEvent{Item: item, Property: body.Kind, Value: body.AnyData}, nil
}

// PropertyChangeEventFromMessage validates msg's interface and member
// headers before decoding.
func PropertyChangeEventFromMessage(msg *dbus.Message) (PropertyChangeEvent, error) {
	return atspi.FromMessageChecked(msg, PropertyChangeEventFromMessageUnchecked)
}

// ToMessage serializes e back to a PropertyChange signal.
func (e PropertyChangeEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberPropertyChange, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.Property, AnyData: e.Value}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// StateChangedEvent reports that item's named state was enabled (1) or
// disabled (0).
type StateChangedEvent struct {
	Item    atspi.ObjectRef
	State   string
	Enabled int32
}

func (StateChangedEvent) DBUSMember() string         { return MemberStateChanged }
func (StateChangedEvent) DBUSInterface() string       { return DBUSInterface }
func (StateChangedEvent) MatchRule() string           { return matchRule(MemberStateChanged) }
func (StateChangedEvent) RegistryEventString() string { return registryString("state-changed") }
func (e StateChangedEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e StateChangedEvent) Sender() string            { return e.Item.Name }

// StateChangedEventFromMessageUnchecked decodes a StateChanged message.
func StateChangedEventFromMessageUnchecked(msg *dbus.Message) (StateChangedEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return StateChangedEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return StateChangedEvent{}, err
	}
	return StateChangedEvent{Item: item, State: body.Kind, Enabled: body.Detail1}, nil
}

// StateChangedEventFromMessage validates msg's interface and member headers
// before decoding.
func StateChangedEventFromMessage(msg *dbus.Message) (StateChangedEvent, error) {
	return atspi.FromMessageChecked(msg, StateChangedEventFromMessageUnchecked)
}

// ToMessage serializes e back to a StateChanged signal.
func (e StateChangedEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberStateChanged, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.State, Detail1: e.Enabled, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// ChildrenChangedEvent reports a child accessible being added or removed.
type ChildrenChangedEvent struct {
	Item          atspi.ObjectRef
	Operation     string
	IndexInParent int32
	Child         dbus.Variant
}

func (ChildrenChangedEvent) DBUSMember() string         { return MemberChildrenChanged }
func (ChildrenChangedEvent) DBUSInterface() string       { return DBUSInterface }
func (ChildrenChangedEvent) MatchRule() string           { return matchRule(MemberChildrenChanged) }
func (ChildrenChangedEvent) RegistryEventString() string { return registryString("children-changed") }
func (e ChildrenChangedEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e ChildrenChangedEvent) Sender() string            { return e.Item.Name }

// ChildrenChangedEventFromMessageUnchecked decodes a ChildrenChanged message.
func ChildrenChangedEventFromMessageUnchecked(msg *dbus.Message) (ChildrenChangedEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return ChildrenChangedEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return ChildrenChangedEvent{}, err
	}
	return ChildrenChangedEvent{Item: item, Operation: body.Kind, IndexInParent: body.Detail1, Child: body.AnyData}, nil
}

// ChildrenChangedEventFromMessage validates msg's interface and member
// headers before decoding.
func ChildrenChangedEventFromMessage(msg *dbus.Message) (ChildrenChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ChildrenChangedEventFromMessageUnchecked)
}

// ToMessage serializes e back to a ChildrenChanged signal.
func (e ChildrenChangedEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberChildrenChanged, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.Operation, Detail1: e.IndexInParent, AnyData: e.Child}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// ActiveDescendantChangedEvent reports a new active descendant (e.g. a
// focused row within a list).
type ActiveDescendantChangedEvent struct {
	Item  atspi.ObjectRef
	Child dbus.Variant
}

func (ActiveDescendantChangedEvent) DBUSMember() string   { return MemberActiveDescendantChanged }
func (ActiveDescendantChangedEvent) DBUSInterface() string { return DBUSInterface }
func (ActiveDescendantChangedEvent) MatchRule() string {
	return matchRule(MemberActiveDescendantChanged)
}
func (ActiveDescendantChangedEvent) RegistryEventString() string {
	return registryString("active-descendant-changed")
}
func (e ActiveDescendantChangedEvent) Path() dbus.ObjectPath { return e.Item.Path }
func (e ActiveDescendantChangedEvent) Sender() string        { return e.Item.Name }

// ActiveDescendantChangedEventFromMessageUnchecked decodes an
// ActiveDescendantChanged message.
func ActiveDescendantChangedEventFromMessageUnchecked(msg *dbus.Message) (ActiveDescendantChangedEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return ActiveDescendantChangedEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return ActiveDescendantChangedEvent{}, err
	}
	return ActiveDescendantChangedEvent{Item: item, Child: body.AnyData}, nil
}

// ActiveDescendantChangedEventFromMessage validates msg's interface and
// member headers before decoding.
func ActiveDescendantChangedEventFromMessage(msg *dbus.Message) (ActiveDescendantChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ActiveDescendantChangedEventFromMessageUnchecked)
}

// ToMessage serializes e back to an ActiveDescendantChanged signal.
func (e ActiveDescendantChangedEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberActiveDescendantChanged, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, AnyData: e.Child}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// AnnouncementEvent carries an assertive or polite announcement string the
// application wants read aloud, with a priority rank.
type AnnouncementEvent struct {
	Item atspi.ObjectRef
	Text string
	Rank int32
}

func (AnnouncementEvent) DBUSMember() string         { return MemberAnnouncement }
func (AnnouncementEvent) DBUSInterface() string       { return DBUSInterface }
func (AnnouncementEvent) MatchRule() string           { return matchRule(MemberAnnouncement) }
func (AnnouncementEvent) RegistryEventString() string { return registryString("announcement") }
func (e AnnouncementEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e AnnouncementEvent) Sender() string            { return e.Item.Name }

// AnnouncementEventFromMessageUnchecked decodes an Announcement message.
func AnnouncementEventFromMessageUnchecked(msg *dbus.Message) (AnnouncementEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return AnnouncementEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return AnnouncementEvent{}, err
	}
	return AnnouncementEvent{Item: item, Text: body.Kind, Rank: body.Detail1}, nil
}

// AnnouncementEventFromMessage validates msg's interface and member headers
// before decoding.
func AnnouncementEventFromMessage(msg *dbus.Message) (AnnouncementEvent, error) {
	return atspi.FromMessageChecked(msg, AnnouncementEventFromMessageUnchecked)
}

// ToMessage serializes e back to an Announcement signal.
func (e AnnouncementEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberAnnouncement, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.Text, Detail1: e.Rank, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// TextChangedEvent reports an insertion or deletion within item's text
// content.
type TextChangedEvent struct {
	Item      atspi.ObjectRef
	Detail    string
	StartPos  int32
	Length    int32
	Text      dbus.Variant
}

func (TextChangedEvent) DBUSMember() string         { return MemberTextChanged }
func (TextChangedEvent) DBUSInterface() string       { return DBUSInterface }
func (TextChangedEvent) MatchRule() string           { return matchRule(MemberTextChanged) }
func (TextChangedEvent) RegistryEventString() string { return registryString("text-changed") }
func (e TextChangedEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e TextChangedEvent) Sender() string            { return e.Item.Name }

// TextChangedEventFromMessageUnchecked decodes a TextChanged message.
func TextChangedEventFromMessageUnchecked(msg *dbus.Message) (TextChangedEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return TextChangedEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return TextChangedEvent{}, err
	}
	return TextChangedEvent{Item: item, Detail: body.Kind, StartPos: body.Detail1, Length: body.Detail2, Text: body.AnyData}, nil
}

// TextChangedEventFromMessage validates msg's interface and member headers
// before decoding.
func TextChangedEventFromMessage(msg *dbus.Message) (TextChangedEvent, error) {
	return atspi.FromMessageChecked(msg, TextChangedEventFromMessageUnchecked)
}

// ToMessage serializes e back to a TextChanged signal.
func (e TextChangedEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberTextChanged, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Kind: e.Detail, Detail1: e.StartPos, Detail2: e.Length, AnyData: e.Text}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// TextCaretMovedEvent reports the text caret moving to a new offset.
type TextCaretMovedEvent struct {
	Item     atspi.ObjectRef
	Position int32
}

func (TextCaretMovedEvent) DBUSMember() string         { return MemberTextCaretMoved }
func (TextCaretMovedEvent) DBUSInterface() string       { return DBUSInterface }
func (TextCaretMovedEvent) MatchRule() string           { return matchRule(MemberTextCaretMoved) }
func (TextCaretMovedEvent) RegistryEventString() string { return registryString("text-caret-moved") }
func (e TextCaretMovedEvent) Path() dbus.ObjectPath     { return e.Item.Path }
func (e TextCaretMovedEvent) Sender() string            { return e.Item.Name }

// TextCaretMovedEventFromMessageUnchecked decodes a TextCaretMoved message.
func TextCaretMovedEventFromMessageUnchecked(msg *dbus.Message) (TextCaretMovedEvent, error) {
	item, err := atspi.ObjectRefFromHeader(msg)
	if err != nil {
		return TextCaretMovedEvent{}, err
	}
	body, err := atspi.DecodeBody(msg)
	if err != nil {
		return TextCaretMovedEvent{}, err
	}
	return TextCaretMovedEvent{Item: item, Position: body.Detail1}, nil
}

// TextCaretMovedEventFromMessage validates msg's interface and member
// headers before decoding.
func TextCaretMovedEventFromMessage(msg *dbus.Message) (TextCaretMovedEvent, error) {
	return atspi.FromMessageChecked(msg, TextCaretMovedEventFromMessageUnchecked)
}

// ToMessage serializes e back to a TextCaretMoved signal.
func (e TextCaretMovedEvent) ToMessage() *dbus.Message {
	headers := atspi.NewSignalHeaders(e.Item, DBUSInterface, MemberTextCaretMoved, atspi.SigATSPIEvent)
	body := atspi.Body{Shape: atspi.ShapeATSPI, Detail1: e.Position, AnyData: atspi.DefaultAnyData()}
	return atspi.NewSignalMessage(headers, body.ToRaw())
}

// itemOnlyEvent is the shape shared by the 15 Object events that carry no
// field beyond their emitter; each gets its own named type below so the
// Events sum and callers keep the one-type-per-member contract of
// spec.md §4.3, but the decode/encode logic lives here once.
type itemOnlyEvent struct {
	Item   atspi.ObjectRef
	member string
	kebab  string
}

func (e itemOnlyEvent) Path() dbus.ObjectPath         { return e.Item.Path }
func (e itemOnlyEvent) Sender() string                { return e.Item.Name }
func (e itemOnlyEvent) MatchRule() string              { return matchRule(e.member) }
func (e itemOnlyEvent) RegistryEventString() string    { return registryString(e.kebab) }

func decodeItemOnly(msg *dbus.Message, member, kebab string) (itemOnlyEvent, error) {
	item, err := atspi.DecodeItemOnly(msg)
	if err != nil {
		return itemOnlyEvent{}, err
	}
	return itemOnlyEvent{Item: item, member: member, kebab: kebab}, nil
}

// ToMessage serializes e back to its declared member's signal; shared by
// every item-only event through embedding.
func (e itemOnlyEvent) ToMessage() *dbus.Message {
	return atspi.EncodeItemOnlyATSPI(e.Item, DBUSInterface, e.member)
}

// BoundsChangedEvent reports item's on-screen bounds changed.
type BoundsChangedEvent struct{ itemOnlyEvent }

func (BoundsChangedEvent) DBUSMember() string   { return MemberBoundsChanged }
func (BoundsChangedEvent) DBUSInterface() string { return DBUSInterface }
func BoundsChangedEventFromMessageUnchecked(msg *dbus.Message) (BoundsChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberBoundsChanged, "bounds-changed")
	return BoundsChangedEvent{e}, err
}

func BoundsChangedEventFromMessage(msg *dbus.Message) (BoundsChangedEvent, error) {
	return atspi.FromMessageChecked(msg, BoundsChangedEventFromMessageUnchecked)
}

// LinkSelectedEvent reports a hyperlink becoming selected.
type LinkSelectedEvent struct{ itemOnlyEvent }

func (LinkSelectedEvent) DBUSMember() string   { return MemberLinkSelected }
func (LinkSelectedEvent) DBUSInterface() string { return DBUSInterface }
func LinkSelectedEventFromMessageUnchecked(msg *dbus.Message) (LinkSelectedEvent, error) {
	e, err := decodeItemOnly(msg, MemberLinkSelected, "link-selected")
	return LinkSelectedEvent{e}, err
}

func LinkSelectedEventFromMessage(msg *dbus.Message) (LinkSelectedEvent, error) {
	return atspi.FromMessageChecked(msg, LinkSelectedEventFromMessageUnchecked)
}

// VisibleDataChangedEvent reports a change to item's visible rendering
// (e.g. an icon swap) that carries no further detail.
type VisibleDataChangedEvent struct{ itemOnlyEvent }

func (VisibleDataChangedEvent) DBUSMember() string   { return MemberVisibleDataChanged }
func (VisibleDataChangedEvent) DBUSInterface() string { return DBUSInterface }
func VisibleDataChangedEventFromMessageUnchecked(msg *dbus.Message) (VisibleDataChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberVisibleDataChanged, "visible-data-changed")
	return VisibleDataChangedEvent{e}, err
}

func VisibleDataChangedEventFromMessage(msg *dbus.Message) (VisibleDataChangedEvent, error) {
	return atspi.FromMessageChecked(msg, VisibleDataChangedEventFromMessageUnchecked)
}

// SelectionChangedEvent reports item's selection set changed.
type SelectionChangedEvent struct{ itemOnlyEvent }

func (SelectionChangedEvent) DBUSMember() string   { return MemberSelectionChanged }
func (SelectionChangedEvent) DBUSInterface() string { return DBUSInterface }
func SelectionChangedEventFromMessageUnchecked(msg *dbus.Message) (SelectionChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberSelectionChanged, "selection-changed")
	return SelectionChangedEvent{e}, err
}

func SelectionChangedEventFromMessage(msg *dbus.Message) (SelectionChangedEvent, error) {
	return atspi.FromMessageChecked(msg, SelectionChangedEventFromMessageUnchecked)
}

// ModelChangedEvent reports item's underlying data model changed.
type ModelChangedEvent struct{ itemOnlyEvent }

func (ModelChangedEvent) DBUSMember() string   { return MemberModelChanged }
func (ModelChangedEvent) DBUSInterface() string { return DBUSInterface }
func ModelChangedEventFromMessageUnchecked(msg *dbus.Message) (ModelChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberModelChanged, "model-changed")
	return ModelChangedEvent{e}, err
}

func ModelChangedEventFromMessage(msg *dbus.Message) (ModelChangedEvent, error) {
	return atspi.FromMessageChecked(msg, ModelChangedEventFromMessageUnchecked)
}

// AttributesChangedEvent reports item's attribute set changed.
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

// RowInsertedEvent reports a table row being inserted.
type RowInsertedEvent struct{ itemOnlyEvent }

func (RowInsertedEvent) DBUSMember() string   { return MemberRowInserted }
func (RowInsertedEvent) DBUSInterface() string { return DBUSInterface }
func RowInsertedEventFromMessageUnchecked(msg *dbus.Message) (RowInsertedEvent, error) {
	e, err := decodeItemOnly(msg, MemberRowInserted, "row-inserted")
	return RowInsertedEvent{e}, err
}

func RowInsertedEventFromMessage(msg *dbus.Message) (RowInsertedEvent, error) {
	return atspi.FromMessageChecked(msg, RowInsertedEventFromMessageUnchecked)
}

// RowReorderedEvent reports table rows being reordered.
type RowReorderedEvent struct{ itemOnlyEvent }

func (RowReorderedEvent) DBUSMember() string   { return MemberRowReordered }
func (RowReorderedEvent) DBUSInterface() string { return DBUSInterface }
func RowReorderedEventFromMessageUnchecked(msg *dbus.Message) (RowReorderedEvent, error) {
	e, err := decodeItemOnly(msg, MemberRowReordered, "row-reordered")
	return RowReorderedEvent{e}, err
}

func RowReorderedEventFromMessage(msg *dbus.Message) (RowReorderedEvent, error) {
	return atspi.FromMessageChecked(msg, RowReorderedEventFromMessageUnchecked)
}

// RowDeletedEvent reports a table row being deleted.
type RowDeletedEvent struct{ itemOnlyEvent }

func (RowDeletedEvent) DBUSMember() string   { return MemberRowDeleted }
func (RowDeletedEvent) DBUSInterface() string { return DBUSInterface }
func RowDeletedEventFromMessageUnchecked(msg *dbus.Message) (RowDeletedEvent, error) {
	e, err := decodeItemOnly(msg, MemberRowDeleted, "row-deleted")
	return RowDeletedEvent{e}, err
}

func RowDeletedEventFromMessage(msg *dbus.Message) (RowDeletedEvent, error) {
	return atspi.FromMessageChecked(msg, RowDeletedEventFromMessageUnchecked)
}

// ColumnInsertedEvent reports a table column being inserted.
type ColumnInsertedEvent struct{ itemOnlyEvent }

func (ColumnInsertedEvent) DBUSMember() string   { return MemberColumnInserted }
func (ColumnInsertedEvent) DBUSInterface() string { return DBUSInterface }
func ColumnInsertedEventFromMessageUnchecked(msg *dbus.Message) (ColumnInsertedEvent, error) {
	e, err := decodeItemOnly(msg, MemberColumnInserted, "column-inserted")
	return ColumnInsertedEvent{e}, err
}

func ColumnInsertedEventFromMessage(msg *dbus.Message) (ColumnInsertedEvent, error) {
	return atspi.FromMessageChecked(msg, ColumnInsertedEventFromMessageUnchecked)
}

// ColumnReorderedEvent reports table columns being reordered.
type ColumnReorderedEvent struct{ itemOnlyEvent }

func (ColumnReorderedEvent) DBUSMember() string   { return MemberColumnReordered }
func (ColumnReorderedEvent) DBUSInterface() string { return DBUSInterface }
func ColumnReorderedEventFromMessageUnchecked(msg *dbus.Message) (ColumnReorderedEvent, error) {
	e, err := decodeItemOnly(msg, MemberColumnReordered, "column-reordered")
	return ColumnReorderedEvent{e}, err
}

func ColumnReorderedEventFromMessage(msg *dbus.Message) (ColumnReorderedEvent, error) {
	return atspi.FromMessageChecked(msg, ColumnReorderedEventFromMessageUnchecked)
}

// ColumnDeletedEvent reports a table column being deleted.
type ColumnDeletedEvent struct{ itemOnlyEvent }

func (ColumnDeletedEvent) DBUSMember() string   { return MemberColumnDeleted }
func (ColumnDeletedEvent) DBUSInterface() string { return DBUSInterface }
func ColumnDeletedEventFromMessageUnchecked(msg *dbus.Message) (ColumnDeletedEvent, error) {
	e, err := decodeItemOnly(msg, MemberColumnDeleted, "column-deleted")
	return ColumnDeletedEvent{e}, err
}

func ColumnDeletedEventFromMessage(msg *dbus.Message) (ColumnDeletedEvent, error) {
	return atspi.FromMessageChecked(msg, ColumnDeletedEventFromMessageUnchecked)
}

// TextBoundsChangedEvent reports the bounding boxes of item's text content
// changing (e.g. after a reflow).
type TextBoundsChangedEvent struct{ itemOnlyEvent }

func (TextBoundsChangedEvent) DBUSMember() string   { return MemberTextBoundsChanged }
func (TextBoundsChangedEvent) DBUSInterface() string { return DBUSInterface }
func TextBoundsChangedEventFromMessageUnchecked(msg *dbus.Message) (TextBoundsChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberTextBoundsChanged, "text-bounds-changed")
	return TextBoundsChangedEvent{e}, err
}

func TextBoundsChangedEventFromMessage(msg *dbus.Message) (TextBoundsChangedEvent, error) {
	return atspi.FromMessageChecked(msg, TextBoundsChangedEventFromMessageUnchecked)
}

// TextSelectionChangedEvent reports item's text selection changing.
type TextSelectionChangedEvent struct{ itemOnlyEvent }

func (TextSelectionChangedEvent) DBUSMember() string   { return MemberTextSelectionChanged }
func (TextSelectionChangedEvent) DBUSInterface() string { return DBUSInterface }
func TextSelectionChangedEventFromMessageUnchecked(msg *dbus.Message) (TextSelectionChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberTextSelectionChanged, "text-selection-changed")
	return TextSelectionChangedEvent{e}, err
}

func TextSelectionChangedEventFromMessage(msg *dbus.Message) (TextSelectionChangedEvent, error) {
	return atspi.FromMessageChecked(msg, TextSelectionChangedEventFromMessageUnchecked)
}

// TextAttributesChangedEvent reports item's text run attributes changing.
type TextAttributesChangedEvent struct{ itemOnlyEvent }

func (TextAttributesChangedEvent) DBUSMember() string   { return MemberTextAttributesChanged }
func (TextAttributesChangedEvent) DBUSInterface() string { return DBUSInterface }
func TextAttributesChangedEventFromMessageUnchecked(msg *dbus.Message) (TextAttributesChangedEvent, error) {
	e, err := decodeItemOnly(msg, MemberTextAttributesChanged, "text-attributes-changed")
	return TextAttributesChangedEvent{e}, err
}

func TextAttributesChangedEventFromMessage(msg *dbus.Message) (TextAttributesChangedEvent, error) {
	return atspi.FromMessageChecked(msg, TextAttributesChangedEventFromMessageUnchecked)
}

// properties is implemented by every one of Object's 22 concrete event
// types; Events delegates path/sender/member/interface/match-rule/registry
// lookups to whichever concrete value is active through it, the Go
// equivalent of the reference implementation's EventTypeProperties /
// EventProperties trait delegation.
type properties interface {
	DBUSMember() string
	DBUSInterface() string
	MatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

// Events is the tagged union over all 22 Object concrete events.
type Events struct {
	payload properties
}

// MatchRule is the interface-wide Object match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Object registry subscription string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Object") }

// DBUSMember, MatchRule, RegistryEventString, Path and Sender delegate to
// whichever concrete event is active.
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
// already been confirmed to be org.a11y.atspi.Event.Object, reading the
// member header and decoding the matching concrete event.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberPropertyChange:
		e, err := PropertyChangeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberBoundsChanged:
		e, err := BoundsChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberLinkSelected:
		e, err := LinkSelectedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberStateChanged:
		e, err := StateChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberChildrenChanged:
		e, err := ChildrenChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberVisibleDataChanged:
		e, err := VisibleDataChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberSelectionChanged:
		e, err := SelectionChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberModelChanged:
		e, err := ModelChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberActiveDescendantChanged:
		e, err := ActiveDescendantChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberAnnouncement:
		e, err := AnnouncementEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberAttributesChanged:
		e, err := AttributesChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRowInserted:
		e, err := RowInsertedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRowReordered:
		e, err := RowReorderedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRowDeleted:
		e, err := RowDeletedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberColumnInserted:
		e, err := ColumnInsertedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberColumnReordered:
		e, err := ColumnReorderedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberColumnDeleted:
		e, err := ColumnDeletedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberTextBoundsChanged:
		e, err := TextBoundsChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberTextSelectionChanged:
		e, err := TextSelectionChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberTextChanged:
		e, err := TextChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberTextAttributesChanged:
		e, err := TextAttributesChangedEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberTextCaretMoved:
		e, err := TextCaretMovedEventFromMessageUnchecked(msg)
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

// PropertyChange projects the sum back to a PropertyChangeEvent.
func (e Events) PropertyChange() (PropertyChangeEvent, error) { return project[PropertyChangeEvent](e) }

// BoundsChanged projects the sum back to a BoundsChangedEvent.
func (e Events) BoundsChanged() (BoundsChangedEvent, error) { return project[BoundsChangedEvent](e) }

// LinkSelected projects the sum back to a LinkSelectedEvent.
func (e Events) LinkSelected() (LinkSelectedEvent, error) { return project[LinkSelectedEvent](e) }

// StateChanged projects the sum back to a StateChangedEvent.
func (e Events) StateChanged() (StateChangedEvent, error) { return project[StateChangedEvent](e) }

// ChildrenChanged projects the sum back to a ChildrenChangedEvent.
func (e Events) ChildrenChanged() (ChildrenChangedEvent, error) {
	return project[ChildrenChangedEvent](e)
}

// VisibleDataChanged projects the sum back to a VisibleDataChangedEvent.
func (e Events) VisibleDataChanged() (VisibleDataChangedEvent, error) {
	return project[VisibleDataChangedEvent](e)
}

// SelectionChanged projects the sum back to a SelectionChangedEvent.
func (e Events) SelectionChanged() (SelectionChangedEvent, error) {
	return project[SelectionChangedEvent](e)
}

// ModelChanged projects the sum back to a ModelChangedEvent.
func (e Events) ModelChanged() (ModelChangedEvent, error) { return project[ModelChangedEvent](e) }

// ActiveDescendantChanged projects the sum back to an
// ActiveDescendantChangedEvent.
func (e Events) ActiveDescendantChanged() (ActiveDescendantChangedEvent, error) {
	return project[ActiveDescendantChangedEvent](e)
}

// Announcement projects the sum back to an AnnouncementEvent.
func (e Events) Announcement() (AnnouncementEvent, error) { return project[AnnouncementEvent](e) }

// AttributesChanged projects the sum back to an AttributesChangedEvent.
func (e Events) AttributesChanged() (AttributesChangedEvent, error) {
	return project[AttributesChangedEvent](e)
}

// RowInserted projects the sum back to a RowInsertedEvent.
func (e Events) RowInserted() (RowInsertedEvent, error) { return project[RowInsertedEvent](e) }

// RowReordered projects the sum back to a RowReorderedEvent.
func (e Events) RowReordered() (RowReorderedEvent, error) { return project[RowReorderedEvent](e) }

// RowDeleted projects the sum back to a RowDeletedEvent.
func (e Events) RowDeleted() (RowDeletedEvent, error) { return project[RowDeletedEvent](e) }

// ColumnInserted projects the sum back to a ColumnInsertedEvent.
func (e Events) ColumnInserted() (ColumnInsertedEvent, error) {
	return project[ColumnInsertedEvent](e)
}

// ColumnReordered projects the sum back to a ColumnReorderedEvent.
func (e Events) ColumnReordered() (ColumnReorderedEvent, error) {
	return project[ColumnReorderedEvent](e)
}

// ColumnDeleted projects the sum back to a ColumnDeletedEvent.
func (e Events) ColumnDeleted() (ColumnDeletedEvent, error) { return project[ColumnDeletedEvent](e) }

// TextBoundsChanged projects the sum back to a TextBoundsChangedEvent.
func (e Events) TextBoundsChanged() (TextBoundsChangedEvent, error) {
	return project[TextBoundsChangedEvent](e)
}

// TextSelectionChanged projects the sum back to a TextSelectionChangedEvent.
func (e Events) TextSelectionChanged() (TextSelectionChangedEvent, error) {
	return project[TextSelectionChangedEvent](e)
}

// TextChanged projects the sum back to a TextChangedEvent.
func (e Events) TextChanged() (TextChangedEvent, error) { return project[TextChangedEvent](e) }

// TextAttributesChanged projects the sum back to a
// TextAttributesChangedEvent.
func (e Events) TextAttributesChanged() (TextAttributesChangedEvent, error) {
	return project[TextAttributesChangedEvent](e)
}

// TextCaretMoved projects the sum back to a TextCaretMovedEvent.
func (e Events) TextCaretMoved() (TextCaretMovedEvent, error) {
	return project[TextCaretMovedEvent](e)
}

func project[T properties](e Events) (T, error) {
	v, ok := e.payload.(T)
	if !ok {
		var zero T
		return zero, atspi.NewConversion("Object Events sum does not hold the requested variant")
	}
	return v, nil
}
