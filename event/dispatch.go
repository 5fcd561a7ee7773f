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

// Package event implements the root tagged union over every interface sum
// plus the events of the three system interfaces (Cache.Add, Cache.Remove,
// Registry's listener events, Socket.Available), and Dispatch, the three-step
// classifier that turns an arbitrary raw D-Bus message into one of them.
package event

import (
	"context"
	"errors"

	"github.com/a11y-tools/atspi-go"
	"github.com/a11y-tools/atspi-go/cache"
	"github.com/a11y-tools/atspi-go/document"
	"github.com/a11y-tools/atspi-go/focus"
	"github.com/a11y-tools/atspi-go/internal/telemetry"
	"github.com/a11y-tools/atspi-go/keyboard"
	"github.com/a11y-tools/atspi-go/mouse"
	"github.com/a11y-tools/atspi-go/object"
	"github.com/a11y-tools/atspi-go/registry"
	"github.com/a11y-tools/atspi-go/terminal"
	"github.com/a11y-tools/atspi-go/window"
	"github.com/godbus/dbus/v5"
)

type kind int

const (
	kindNone kind = iota
	kindDocument
	kindFocus
	kindKeyboard
	kindMouse
	kindObject
	kindTerminal
	kindWindow
	kindAvailable
	kindCache
	kindListener
)

// Event is the root tagged union: every concrete event reachable from a
// raw bus message projects up through exactly one of these ten branches.
type Event struct {
	kind      kind
	document  document.Events
	focus     focus.Events
	keyboard  keyboard.Events
	mouse     mouse.Events
	object    object.Events
	terminal  terminal.Events
	window    window.Events
	available registry.AvailableEvent
	cache     cache.Events
	listener  registry.ListenerEvents
}

func fromDocument(e document.Events) Event { return Event{kind: kindDocument, document: e} }
func fromFocus(e focus.Events) Event       { return Event{kind: kindFocus, focus: e} }
func fromKeyboard(e keyboard.Events) Event { return Event{kind: kindKeyboard, keyboard: e} }
func fromMouse(e mouse.Events) Event       { return Event{kind: kindMouse, mouse: e} }
func fromObject(e object.Events) Event     { return Event{kind: kindObject, object: e} }
func fromTerminal(e terminal.Events) Event { return Event{kind: kindTerminal, terminal: e} }
func fromWindow(e window.Events) Event     { return Event{kind: kindWindow, window: e} }
func fromAvailable(e registry.AvailableEvent) Event {
	return Event{kind: kindAvailable, available: e}
}
func fromCache(e cache.Events) Event       { return Event{kind: kindCache, cache: e} }
func fromListener(e registry.ListenerEvents) Event { return Event{kind: kindListener, listener: e} }

// Document projects the sum back to the Document interface sum.
func (e Event) Document() (document.Events, error) {
	if e.kind != kindDocument {
		return document.Events{}, atspi.NewConversion("Event sum does not hold Document")
	}
	return e.document, nil
}

// Focus projects the sum back to the Focus interface sum.
func (e Event) Focus() (focus.Events, error) {
	if e.kind != kindFocus {
		return focus.Events{}, atspi.NewConversion("Event sum does not hold Focus")
	}
	return e.focus, nil
}

// Keyboard projects the sum back to the Keyboard interface sum.
func (e Event) Keyboard() (keyboard.Events, error) {
	if e.kind != kindKeyboard {
		return keyboard.Events{}, atspi.NewConversion("Event sum does not hold Keyboard")
	}
	return e.keyboard, nil
}

// Mouse projects the sum back to the Mouse interface sum.
func (e Event) Mouse() (mouse.Events, error) {
	if e.kind != kindMouse {
		return mouse.Events{}, atspi.NewConversion("Event sum does not hold Mouse")
	}
	return e.mouse, nil
}

// Object projects the sum back to the Object interface sum.
func (e Event) Object() (object.Events, error) {
	if e.kind != kindObject {
		return object.Events{}, atspi.NewConversion("Event sum does not hold Object")
	}
	return e.object, nil
}

// Terminal projects the sum back to the Terminal interface sum.
func (e Event) Terminal() (terminal.Events, error) {
	if e.kind != kindTerminal {
		return terminal.Events{}, atspi.NewConversion("Event sum does not hold Terminal")
	}
	return e.terminal, nil
}

// Window projects the sum back to the Window interface sum.
func (e Event) Window() (window.Events, error) {
	if e.kind != kindWindow {
		return window.Events{}, atspi.NewConversion("Event sum does not hold Window")
	}
	return e.window, nil
}

// Available projects the sum back to the Socket.Available event.
func (e Event) Available() (registry.AvailableEvent, error) {
	if e.kind != kindAvailable {
		return registry.AvailableEvent{}, atspi.NewConversion("Event sum does not hold Available")
	}
	return e.available, nil
}

// Cache projects the sum back to the Cache interface sum.
func (e Event) Cache() (cache.Events, error) {
	if e.kind != kindCache {
		return cache.Events{}, atspi.NewConversion("Event sum does not hold Cache")
	}
	return e.cache, nil
}

// Listener projects the sum back to the Registry listener interface sum.
func (e Event) Listener() (registry.ListenerEvents, error) {
	if e.kind != kindListener {
		return registry.ListenerEvents{}, atspi.NewConversion("Event sum does not hold Listener")
	}
	return e.listener, nil
}

// properties is implemented by every one of the ten branches (cache.Events
// and registry.ListenerEvents were extended with these delegating methods
// specifically so the root sum can expose them uniformly too).
type properties interface {
	DBUSMember() string
	DBUSInterface() string
	EventMatchRule() string
	RegistryEventString() string
	Path() dbus.ObjectPath
	Sender() string
}

func (e Event) activeBranch() properties {
	switch e.kind {
	case kindDocument:
		return e.document
	case kindFocus:
		return e.focus
	case kindKeyboard:
		return e.keyboard
	case kindMouse:
		return e.mouse
	case kindObject:
		return e.object
	case kindTerminal:
		return e.terminal
	case kindWindow:
		return e.window
	case kindAvailable:
		return e.available
	case kindCache:
		return e.cache
	case kindListener:
		return e.listener
	default:
		return nil
	}
}

// DBUSMember delegates to whichever branch is active.
func (e Event) DBUSMember() string {
	if b := e.activeBranch(); b != nil {
		return b.DBUSMember()
	}
	return ""
}

// DBUSInterface delegates to whichever branch is active.
func (e Event) DBUSInterface() string {
	if b := e.activeBranch(); b != nil {
		return b.DBUSInterface()
	}
	return ""
}

// EventMatchRule delegates to whichever branch is active.
func (e Event) EventMatchRule() string {
	if b := e.activeBranch(); b != nil {
		return b.EventMatchRule()
	}
	return ""
}

// RegistryEventString delegates to whichever branch is active.
func (e Event) RegistryEventString() string {
	if b := e.activeBranch(); b != nil {
		return b.RegistryEventString()
	}
	return ""
}

// Path delegates to whichever branch is active.
func (e Event) Path() dbus.ObjectPath {
	if b := e.activeBranch(); b != nil {
		return b.Path()
	}
	return ""
}

// Sender delegates to whichever branch is active.
func (e Event) Sender() string {
	if b := e.activeBranch(); b != nil {
		return b.Sender()
	}
	return ""
}

// Dispatch implements the three-step classification of a raw bus message
// into an Event: by body signature, then (for the ATSPI/QSPI branch) by
// interface, then by member. ctx carries an optional parent trace span;
// passing context.Background() is always safe and incurs no cost beyond a
// no-op span when no TracerProvider is configured.
func Dispatch(ctx context.Context, msg *dbus.Message) (Event, error) {
	_, end := telemetry.StartDispatch(ctx)
	e, err := dispatch(msg)
	if err != nil {
		if ae, ok := err.(*atspi.Error); ok {
			telemetry.RecordDecodeError(ae.Kind.String())
		}
		end("", err)
		return Event{}, err
	}
	end(e.DBUSInterface(), nil)
	telemetry.RecordDispatched(e.DBUSInterface())
	return e, nil
}

func dispatch(msg *dbus.Message) (Event, error) {
	sig, ok := atspi.SignatureHeader(msg)
	if !ok {
		return Event{}, atspi.NewMissingSignature()
	}

	switch sig {
	case "so":
		return dispatchObjectRefPair(msg)
	case atspi.SigATSPIEvent, atspi.SigQSPIEvent:
		return dispatchInterfaceEvent(msg)
	case atspi.SigListenerPair:
		le, err := registry.FromMessageInterfaceChecked(msg)
		if err != nil {
			if errors.Is(err, atspi.ErrUnknownSignal) {
				telemetry.RecordUnknownSignal(atspi.InterfaceRegistry)
			}
			return Event{}, err
		}
		return fromListener(le), nil
	case atspi.SigCacheAdd:
		ae, err := cache.AddEventFromMessageUnchecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromCache(cache.NewFromAdd(ae)), nil
	case atspi.SigCacheAddLegacy:
		le, err := cache.LegacyAddEventFromMessageUnchecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromCache(cache.NewFromLegacyAdd(le)), nil
	default:
		return Event{}, atspi.NewUnknownBusSignature(sig)
	}
}

// dispatchObjectRefPair handles the "so" branch: either Cache.RemoveAccessible
// or Socket.Available, selected by member string.
func dispatchObjectRefPair(msg *dbus.Message) (Event, error) {
	member, ok := atspi.MemberHeader(msg)
	if !ok {
		return Event{}, atspi.NewMissingMember()
	}
	switch member {
	case cache.MemberRemoveAccessible:
		re, err := cache.RemoveEventFromMessageUnchecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromCache(cache.NewFromRemove(re)), nil
	case registry.MemberAvailable:
		ae, err := registry.AvailableEventFromMessageUnchecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromAvailable(ae), nil
	default:
		telemetry.RecordUnknownSignal("")
		return Event{}, atspi.NewUnknownSignal(member)
	}
}

// dispatchInterfaceEvent handles the ATSPI/QSPI branch: read the interface
// header and delegate to the matching interface sum's own member dispatch.
func dispatchInterfaceEvent(msg *dbus.Message) (Event, error) {
	iface, ok := atspi.InterfaceHeader(msg)
	if !ok {
		return Event{}, atspi.NewMissingInterface()
	}
	switch iface {
	case atspi.InterfaceObject:
		oe, err := object.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromObject(oe), nil
	case atspi.InterfaceWindow:
		we, err := window.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromWindow(we), nil
	case atspi.InterfaceDocument:
		de, err := document.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromDocument(de), nil
	case atspi.InterfaceFocus:
		fe, err := focus.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromFocus(fe), nil
	case atspi.InterfaceKeyboard:
		ke, err := keyboard.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromKeyboard(ke), nil
	case atspi.InterfaceMouse:
		me, err := mouse.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromMouse(me), nil
	case atspi.InterfaceTerminal:
		te, err := terminal.FromMessageInterfaceChecked(msg)
		if err != nil {
			return Event{}, err
		}
		return fromTerminal(te), nil
	default:
		return Event{}, atspi.NewUnknownInterface(iface)
	}
}
