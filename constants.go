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

// The seven ATSPI/QSPI event-group interface names and the three system
// interfaces, shared by every per-interface package and the top-level
// dispatcher so they never drift out of sync with each other.
const (
	InterfaceObject   = "org.a11y.atspi.Event.Object"
	InterfaceWindow    = "org.a11y.atspi.Event.Window"
	InterfaceDocument  = "org.a11y.atspi.Event.Document"
	InterfaceFocus     = "org.a11y.atspi.Event.Focus"
	InterfaceKeyboard  = "org.a11y.atspi.Event.Keyboard"
	InterfaceMouse     = "org.a11y.atspi.Event.Mouse"
	InterfaceTerminal  = "org.a11y.atspi.Event.Terminal"

	InterfaceCache    = "org.a11y.atspi.Cache"
	InterfaceRegistry = "org.a11y.atspi.Registry"
	InterfaceSocket   = "org.a11y.atspi.Socket"
)

// MemberMatchRule renders the compile-time match-rule string for a single
// member of an interface: type='signal',interface='<iface>',member='<member>'.
func MemberMatchRule(iface, member string) string {
	return "type='signal',interface='" + iface + "',member='" + member + "'"
}

// InterfaceMatchRule renders the interface-wide match rule (no member
// clause), used by each interface sum's MATCH_RULE_STRING.
func InterfaceMatchRule(iface string) string {
	return "type='signal',interface='" + iface + "'"
}

// RegistryEventString renders the colon-separated listener registration key
// for a concrete event, e.g. RegistryEventString("object", "state-changed")
// yields "object:state-changed".
func RegistryEventString(group, kebabMember string) string {
	return group + ":" + kebabMember
}

// InterfaceRegistryPrefix renders the interface-wide registry subscription
// string, e.g. "Object:".
func InterfaceRegistryPrefix(group string) string {
	return group + ":"
}
