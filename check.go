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

package atspi

import (
	"github.com/godbus/dbus/v5"
)

// checkable is implemented by every concrete event type across every
// per-interface package: the interface and member a message must carry to
// be that type, queryable off the type's zero value since both methods are
// declared on value receivers. This is the Go shape of the reference
// implementation's GenericEvent::DBUS_INTERFACE/DBUS_MEMBER constants.
type checkable interface {
	DBUSInterface() string
	DBUSMember() string
}

// CheckHeaders validates that msg's interface and member headers agree with
// T's declared constants, in the order the reference implementation's
// impl_from_dbus_message! macro checks them: interface present, interface
// matches, member present, member matches. It reports the first disagreement
// it finds and nil once all four checks pass.
func CheckHeaders[T checkable](msg *dbus.Message) error {
	var want T
	iface, ok := InterfaceHeader(msg)
	if !ok {
		return NewMissingInterface()
	}
	if iface != want.DBUSInterface() {
		return NewInterfaceMatch(want.DBUSInterface(), iface)
	}
	member, ok := MemberHeader(msg)
	if !ok {
		return NewMissingMember()
	}
	if member != want.DBUSMember() {
		return NewMemberMatch(want.DBUSMember(), member)
	}
	return nil
}

// FromMessageChecked is the checked counterpart to every concrete event's
// *FromMessageUnchecked decoder: it validates msg's interface and member
// headers against T's declared constants before calling decode, so a
// mismatched message is rejected with InterfaceMatch or MemberMatch rather
// than silently decoded under the wrong type.
func FromMessageChecked[T checkable](msg *dbus.Message, decode func(*dbus.Message) (T, error)) (T, error) {
	if err := CheckHeaders[T](msg); err != nil {
		var zero T
		return zero, err
	}
	return decode(msg)
}

// CheckInterface validates that msg's interface header equals iface,
// without regard to member; it backs the interface-sum FromMessage
// operations (Events, ListenerEvents, AvailableEvent), which must accept
// any of several members once the interface itself is confirmed.
func CheckInterface(msg *dbus.Message, iface string) error {
	got, ok := InterfaceHeader(msg)
	if !ok {
		return NewMissingInterface()
	}
	if got != iface {
		return NewInterfaceMatch(iface, got)
	}
	return nil
}
