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

// Package window implements the org.a11y.atspi.Event.Window interface: the
// 19 concrete events a top-level window emits across its lifecycle, from
// creation through minimize/maximize/shade transitions to destruction.
package window

import (
	"github.com/a11y-tools/atspi-go"
	"github.com/godbus/dbus/v5"
)

// DBUSInterface is this package's D-Bus interface name.
const DBUSInterface = atspi.InterfaceWindow

// Member name constants, one per concrete event. uUshade preserves the
// reference implementation's odd mid-word capitalization verbatim; it is
// the genuine at-spi2-core wire spelling, not a typo.
const (
	MemberPropertyChange  = "PropertyChange"
	MemberMinimize        = "Minimize"
	MemberMaximize        = "Maximize"
	MemberRestore         = "Restore"
	MemberClose           = "Close"
	MemberCreate          = "Create"
	MemberReparent        = "Reparent"
	MemberDesktopCreate   = "DesktopCreate"
	MemberDesktopDestroy  = "DesktopDestroy"
	MemberDestroy         = "Destroy"
	MemberActivate        = "Activate"
	MemberDeactivate      = "Deactivate"
	MemberRaise           = "Raise"
	MemberLower           = "Lower"
	MemberMove            = "Move"
	MemberResize          = "Resize"
	MemberShade           = "Shade"
	MemberUUshade         = "uUshade"
	MemberRestyle         = "Restyle"
)

func matchRule(member string) string     { return atspi.MemberMatchRule(DBUSInterface, member) }
func registryString(kebab string) string { return atspi.RegistryEventString("window", kebab) }

// PropertyChangeEvent reports that a named property of the window changed;
// Value carries the new value when the server provides one.
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

// itemOnlyEvent is the shape shared by the 18 Window events that carry no
// field beyond their emitter.
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

// ToMessage serializes e back to its declared member's signal; shared by
// every item-only event through embedding.
func (e itemOnlyEvent) ToMessage() *dbus.Message {
	return atspi.EncodeItemOnlyATSPI(e.Item, DBUSInterface, e.member)
}

// MinimizeEvent reports the window being minimized.
type MinimizeEvent struct{ itemOnlyEvent }

func (MinimizeEvent) DBUSMember() string   { return MemberMinimize }
func (MinimizeEvent) DBUSInterface() string { return DBUSInterface }
func MinimizeEventFromMessageUnchecked(msg *dbus.Message) (MinimizeEvent, error) {
	e, err := decodeItemOnly(msg, MemberMinimize, "minimize")
	return MinimizeEvent{e}, err
}

func MinimizeEventFromMessage(msg *dbus.Message) (MinimizeEvent, error) {
	return atspi.FromMessageChecked(msg, MinimizeEventFromMessageUnchecked)
}

// MaximizeEvent reports the window being maximized.
type MaximizeEvent struct{ itemOnlyEvent }

func (MaximizeEvent) DBUSMember() string   { return MemberMaximize }
func (MaximizeEvent) DBUSInterface() string { return DBUSInterface }
func MaximizeEventFromMessageUnchecked(msg *dbus.Message) (MaximizeEvent, error) {
	e, err := decodeItemOnly(msg, MemberMaximize, "maximize")
	return MaximizeEvent{e}, err
}

func MaximizeEventFromMessage(msg *dbus.Message) (MaximizeEvent, error) {
	return atspi.FromMessageChecked(msg, MaximizeEventFromMessageUnchecked)
}

// RestoreEvent reports the window being restored from a minimized or
// maximized state.
type RestoreEvent struct{ itemOnlyEvent }

func (RestoreEvent) DBUSMember() string   { return MemberRestore }
func (RestoreEvent) DBUSInterface() string { return DBUSInterface }
func RestoreEventFromMessageUnchecked(msg *dbus.Message) (RestoreEvent, error) {
	e, err := decodeItemOnly(msg, MemberRestore, "restore")
	return RestoreEvent{e}, err
}

func RestoreEventFromMessage(msg *dbus.Message) (RestoreEvent, error) {
	return atspi.FromMessageChecked(msg, RestoreEventFromMessageUnchecked)
}

// CloseEvent reports the window closing.
type CloseEvent struct{ itemOnlyEvent }

func (CloseEvent) DBUSMember() string   { return MemberClose }
func (CloseEvent) DBUSInterface() string { return DBUSInterface }
func CloseEventFromMessageUnchecked(msg *dbus.Message) (CloseEvent, error) {
	e, err := decodeItemOnly(msg, MemberClose, "close")
	return CloseEvent{e}, err
}

func CloseEventFromMessage(msg *dbus.Message) (CloseEvent, error) {
	return atspi.FromMessageChecked(msg, CloseEventFromMessageUnchecked)
}

// CreateEvent reports a new window being created.
type CreateEvent struct{ itemOnlyEvent }

func (CreateEvent) DBUSMember() string   { return MemberCreate }
func (CreateEvent) DBUSInterface() string { return DBUSInterface }
func CreateEventFromMessageUnchecked(msg *dbus.Message) (CreateEvent, error) {
	e, err := decodeItemOnly(msg, MemberCreate, "create")
	return CreateEvent{e}, err
}

func CreateEventFromMessage(msg *dbus.Message) (CreateEvent, error) {
	return atspi.FromMessageChecked(msg, CreateEventFromMessageUnchecked)
}

// ReparentEvent reports the window being reparented to a new container.
type ReparentEvent struct{ itemOnlyEvent }

func (ReparentEvent) DBUSMember() string   { return MemberReparent }
func (ReparentEvent) DBUSInterface() string { return DBUSInterface }
func ReparentEventFromMessageUnchecked(msg *dbus.Message) (ReparentEvent, error) {
	e, err := decodeItemOnly(msg, MemberReparent, "reparent")
	return ReparentEvent{e}, err
}

func ReparentEventFromMessage(msg *dbus.Message) (ReparentEvent, error) {
	return atspi.FromMessageChecked(msg, ReparentEventFromMessageUnchecked)
}

// DesktopCreateEvent reports a new virtual desktop being created.
type DesktopCreateEvent struct{ itemOnlyEvent }

func (DesktopCreateEvent) DBUSMember() string   { return MemberDesktopCreate }
func (DesktopCreateEvent) DBUSInterface() string { return DBUSInterface }
func DesktopCreateEventFromMessageUnchecked(msg *dbus.Message) (DesktopCreateEvent, error) {
	e, err := decodeItemOnly(msg, MemberDesktopCreate, "desktop-create")
	return DesktopCreateEvent{e}, err
}

func DesktopCreateEventFromMessage(msg *dbus.Message) (DesktopCreateEvent, error) {
	return atspi.FromMessageChecked(msg, DesktopCreateEventFromMessageUnchecked)
}

// DesktopDestroyEvent reports a virtual desktop being destroyed.
type DesktopDestroyEvent struct{ itemOnlyEvent }

func (DesktopDestroyEvent) DBUSMember() string   { return MemberDesktopDestroy }
func (DesktopDestroyEvent) DBUSInterface() string { return DBUSInterface }
func DesktopDestroyEventFromMessageUnchecked(msg *dbus.Message) (DesktopDestroyEvent, error) {
	e, err := decodeItemOnly(msg, MemberDesktopDestroy, "desktop-destroy")
	return DesktopDestroyEvent{e}, err
}

func DesktopDestroyEventFromMessage(msg *dbus.Message) (DesktopDestroyEvent, error) {
	return atspi.FromMessageChecked(msg, DesktopDestroyEventFromMessageUnchecked)
}

// DestroyEvent reports the window being destroyed.
type DestroyEvent struct{ itemOnlyEvent }

func (DestroyEvent) DBUSMember() string   { return MemberDestroy }
func (DestroyEvent) DBUSInterface() string { return DBUSInterface }
func DestroyEventFromMessageUnchecked(msg *dbus.Message) (DestroyEvent, error) {
	e, err := decodeItemOnly(msg, MemberDestroy, "destroy")
	return DestroyEvent{e}, err
}

func DestroyEventFromMessage(msg *dbus.Message) (DestroyEvent, error) {
	return atspi.FromMessageChecked(msg, DestroyEventFromMessageUnchecked)
}

// ActivateEvent reports the window becoming active (focused at the window
// manager level).
type ActivateEvent struct{ itemOnlyEvent }

func (ActivateEvent) DBUSMember() string   { return MemberActivate }
func (ActivateEvent) DBUSInterface() string { return DBUSInterface }
func ActivateEventFromMessageUnchecked(msg *dbus.Message) (ActivateEvent, error) {
	e, err := decodeItemOnly(msg, MemberActivate, "activate")
	return ActivateEvent{e}, err
}

func ActivateEventFromMessage(msg *dbus.Message) (ActivateEvent, error) {
	return atspi.FromMessageChecked(msg, ActivateEventFromMessageUnchecked)
}

// DeactivateEvent reports the window losing activation.
type DeactivateEvent struct{ itemOnlyEvent }

func (DeactivateEvent) DBUSMember() string   { return MemberDeactivate }
func (DeactivateEvent) DBUSInterface() string { return DBUSInterface }
func DeactivateEventFromMessageUnchecked(msg *dbus.Message) (DeactivateEvent, error) {
	e, err := decodeItemOnly(msg, MemberDeactivate, "deactivate")
	return DeactivateEvent{e}, err
}

func DeactivateEventFromMessage(msg *dbus.Message) (DeactivateEvent, error) {
	return atspi.FromMessageChecked(msg, DeactivateEventFromMessageUnchecked)
}

// RaiseEvent reports the window being raised above its siblings.
type RaiseEvent struct{ itemOnlyEvent }

func (RaiseEvent) DBUSMember() string   { return MemberRaise }
func (RaiseEvent) DBUSInterface() string { return DBUSInterface }
func RaiseEventFromMessageUnchecked(msg *dbus.Message) (RaiseEvent, error) {
	e, err := decodeItemOnly(msg, MemberRaise, "raise")
	return RaiseEvent{e}, err
}

func RaiseEventFromMessage(msg *dbus.Message) (RaiseEvent, error) {
	return atspi.FromMessageChecked(msg, RaiseEventFromMessageUnchecked)
}

// LowerEvent reports the window being lowered below its siblings.
type LowerEvent struct{ itemOnlyEvent }

func (LowerEvent) DBUSMember() string   { return MemberLower }
func (LowerEvent) DBUSInterface() string { return DBUSInterface }
func LowerEventFromMessageUnchecked(msg *dbus.Message) (LowerEvent, error) {
	e, err := decodeItemOnly(msg, MemberLower, "lower")
	return LowerEvent{e}, err
}

func LowerEventFromMessage(msg *dbus.Message) (LowerEvent, error) {
	return atspi.FromMessageChecked(msg, LowerEventFromMessageUnchecked)
}

// MoveEvent reports the window being moved.
type MoveEvent struct{ itemOnlyEvent }

func (MoveEvent) DBUSMember() string   { return MemberMove }
func (MoveEvent) DBUSInterface() string { return DBUSInterface }
func MoveEventFromMessageUnchecked(msg *dbus.Message) (MoveEvent, error) {
	e, err := decodeItemOnly(msg, MemberMove, "move")
	return MoveEvent{e}, err
}

func MoveEventFromMessage(msg *dbus.Message) (MoveEvent, error) {
	return atspi.FromMessageChecked(msg, MoveEventFromMessageUnchecked)
}

// ResizeEvent reports the window being resized.
type ResizeEvent struct{ itemOnlyEvent }

func (ResizeEvent) DBUSMember() string   { return MemberResize }
func (ResizeEvent) DBUSInterface() string { return DBUSInterface }
func ResizeEventFromMessageUnchecked(msg *dbus.Message) (ResizeEvent, error) {
	e, err := decodeItemOnly(msg, MemberResize, "resize")
	return ResizeEvent{e}, err
}

func ResizeEventFromMessage(msg *dbus.Message) (ResizeEvent, error) {
	return atspi.FromMessageChecked(msg, ResizeEventFromMessageUnchecked)
}

// ShadeEvent reports the window being shaded (rolled up to its titlebar).
type ShadeEvent struct{ itemOnlyEvent }

func (ShadeEvent) DBUSMember() string   { return MemberShade }
func (ShadeEvent) DBUSInterface() string { return DBUSInterface }
func ShadeEventFromMessageUnchecked(msg *dbus.Message) (ShadeEvent, error) {
	e, err := decodeItemOnly(msg, MemberShade, "shade")
	return ShadeEvent{e}, err
}

func ShadeEventFromMessage(msg *dbus.Message) (ShadeEvent, error) {
	return atspi.FromMessageChecked(msg, ShadeEventFromMessageUnchecked)
}

// UUshadeEvent reports the window being unshaded; the member name preserves
// the upstream wire spelling "uUshade".
type UUshadeEvent struct{ itemOnlyEvent }

func (UUshadeEvent) DBUSMember() string   { return MemberUUshade }
func (UUshadeEvent) DBUSInterface() string { return DBUSInterface }
func UUshadeEventFromMessageUnchecked(msg *dbus.Message) (UUshadeEvent, error) {
	e, err := decodeItemOnly(msg, MemberUUshade, "uushade")
	return UUshadeEvent{e}, err
}

func UUshadeEventFromMessage(msg *dbus.Message) (UUshadeEvent, error) {
	return atspi.FromMessageChecked(msg, UUshadeEventFromMessageUnchecked)
}

// RestyleEvent reports the window's visual style changing (e.g. a theme
// switch).
type RestyleEvent struct{ itemOnlyEvent }

func (RestyleEvent) DBUSMember() string   { return MemberRestyle }
func (RestyleEvent) DBUSInterface() string { return DBUSInterface }
func RestyleEventFromMessageUnchecked(msg *dbus.Message) (RestyleEvent, error) {
	e, err := decodeItemOnly(msg, MemberRestyle, "restyle")
	return RestyleEvent{e}, err
}

func RestyleEventFromMessage(msg *dbus.Message) (RestyleEvent, error) {
	return atspi.FromMessageChecked(msg, RestyleEventFromMessageUnchecked)
}

// properties is implemented by every one of Window's 19 concrete event
// types.
type properties interface {
	DBUSMember() string
	DBUSInterface() string
	MatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

// Events is the tagged union over all 19 Window concrete events.
type Events struct {
	payload properties
}

// MatchRule is the interface-wide Window match rule (no member clause).
func MatchRule() string { return atspi.InterfaceMatchRule(DBUSInterface) }

// RegistryPrefix is the interface-wide Window registry subscription string.
func RegistryPrefix() string { return atspi.InterfaceRegistryPrefix("Window") }

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
// already been confirmed to be org.a11y.atspi.Event.Window, reading the
// member header and decoding the matching concrete event. The Close member
// is matched against the literal string "Close" rather than the
// MemberClose constant: the two are identical today, but this mirrors the
// reference implementation's own special case rather than assuming it will
// always stay that way.
func FromMessageInterfaceChecked(msg *dbus.Message) (Events, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Events{}, atspi.NewMissingMember()
	}
	switch member {
	case MemberPropertyChange:
		e, err := PropertyChangeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberMinimize:
		e, err := MinimizeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberMaximize:
		e, err := MaximizeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRestore:
		e, err := RestoreEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case "Close":
		e, err := CloseEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberCreate:
		e, err := CreateEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberReparent:
		e, err := ReparentEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberDesktopCreate:
		e, err := DesktopCreateEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberDesktopDestroy:
		e, err := DesktopDestroyEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberDestroy:
		e, err := DestroyEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberActivate:
		e, err := ActivateEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberDeactivate:
		e, err := DeactivateEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRaise:
		e, err := RaiseEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberLower:
		e, err := LowerEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberMove:
		e, err := MoveEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberResize:
		e, err := ResizeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberShade:
		e, err := ShadeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberUUshade:
		e, err := UUshadeEventFromMessageUnchecked(msg)
		return wrap(e, err)
	case MemberRestyle:
		e, err := RestyleEventFromMessageUnchecked(msg)
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
		return zero, atspi.NewConversion("Window Events sum does not hold the requested variant")
	}
	return v, nil
}

// PropertyChange projects the sum back to a PropertyChangeEvent.
func (e Events) PropertyChange() (PropertyChangeEvent, error) { return project[PropertyChangeEvent](e) }

// Minimize projects the sum back to a MinimizeEvent.
func (e Events) Minimize() (MinimizeEvent, error) { return project[MinimizeEvent](e) }

// Maximize projects the sum back to a MaximizeEvent.
func (e Events) Maximize() (MaximizeEvent, error) { return project[MaximizeEvent](e) }

// Restore projects the sum back to a RestoreEvent.
func (e Events) Restore() (RestoreEvent, error) { return project[RestoreEvent](e) }

// Close projects the sum back to a CloseEvent.
func (e Events) Close() (CloseEvent, error) { return project[CloseEvent](e) }

// Create projects the sum back to a CreateEvent.
func (e Events) Create() (CreateEvent, error) { return project[CreateEvent](e) }

// Reparent projects the sum back to a ReparentEvent.
func (e Events) Reparent() (ReparentEvent, error) { return project[ReparentEvent](e) }

// DesktopCreate projects the sum back to a DesktopCreateEvent.
func (e Events) DesktopCreate() (DesktopCreateEvent, error) { return project[DesktopCreateEvent](e) }

// DesktopDestroy projects the sum back to a DesktopDestroyEvent.
func (e Events) DesktopDestroy() (DesktopDestroyEvent, error) {
	return project[DesktopDestroyEvent](e)
}

// Destroy projects the sum back to a DestroyEvent.
func (e Events) Destroy() (DestroyEvent, error) { return project[DestroyEvent](e) }

// Activate projects the sum back to an ActivateEvent.
func (e Events) Activate() (ActivateEvent, error) { return project[ActivateEvent](e) }

// Deactivate projects the sum back to a DeactivateEvent.
func (e Events) Deactivate() (DeactivateEvent, error) { return project[DeactivateEvent](e) }

// Raise projects the sum back to a RaiseEvent.
func (e Events) Raise() (RaiseEvent, error) { return project[RaiseEvent](e) }

// Lower projects the sum back to a LowerEvent.
func (e Events) Lower() (LowerEvent, error) { return project[LowerEvent](e) }

// Move projects the sum back to a MoveEvent.
func (e Events) Move() (MoveEvent, error) { return project[MoveEvent](e) }

// Resize projects the sum back to a ResizeEvent.
func (e Events) Resize() (ResizeEvent, error) { return project[ResizeEvent](e) }

// Shade projects the sum back to a ShadeEvent.
func (e Events) Shade() (ShadeEvent, error) { return project[ShadeEvent](e) }

// UUshade projects the sum back to a UUshadeEvent.
func (e Events) UUshade() (UUshadeEvent, error) { return project[UUshadeEvent](e) }

// Restyle projects the sum back to a RestyleEvent.
func (e Events) Restyle() (RestyleEvent, error) { return project[RestyleEvent](e) }
