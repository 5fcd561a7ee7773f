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

// Package atspi implements the wire-level core of an AT-SPI2 client: object
// references, the ATSPI/QSPI event body codec, and the shared machinery that
// the per-interface packages (object, window, mouse, keyboard, terminal,
// document, focus, cache, registry) and the top-level event package build on.
package atspi

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the closed set of ways classification or conversion can fail.
type Kind int

const (
	// InterfaceMatch means the message's interface header disagreed with
	// the target event's declared interface.
	InterfaceMatch Kind = iota + 1
	// MemberMatch means the message's member header disagreed with the
	// target event's declared member.
	MemberMatch
	// MissingInterface means the message carried no interface header.
	MissingInterface
	// MissingMember means the message carried no member header.
	MissingMember
	// MissingSignature means the message body carried no signature header.
	MissingSignature
	// SignatureMatch means the body signature was recognized in general
	// but was wrong for the member it was paired with.
	SignatureMatch
	// UnknownInterface means the interface name was well-formed but not
	// one of the seven known event-group interfaces.
	UnknownInterface
	// UnknownSignal means an (so) or (ss) bodied message carried a member
	// name that matches none of the members that shape supports.
	UnknownSignal
	// UnknownBusSignature means the body signature was not any of the
	// signatures the dispatcher enumerates.
	UnknownBusSignature
	// Conversion means a sum-type projection was attempted against a
	// variant that was not the one actually stored, or that a body field,
	// header or Variant did not hold the Go type its decoder expects.
	Conversion
	// VariantClone means deep-cloning an any_data Variant holding an
	// owned file descriptor failed because the process ran out of fds.
	VariantClone
)

func (k Kind) String() string {
	switch k {
	case InterfaceMatch:
		return "InterfaceMatch"
	case MemberMatch:
		return "MemberMatch"
	case MissingInterface:
		return "MissingInterface"
	case MissingMember:
		return "MissingMember"
	case MissingSignature:
		return "MissingSignature"
	case SignatureMatch:
		return "SignatureMatch"
	case UnknownInterface:
		return "UnknownInterface"
	case UnknownSignal:
		return "UnknownSignal"
	case UnknownBusSignature:
		return "UnknownBusSignature"
	case Conversion:
		return "Conversion"
	case VariantClone:
		return "VariantClone"
	default:
		return "Unknown"
	}
}

// Error is the single error type the core returns. It never panics on
// malformed input; Kind narrows what went wrong and Expected/Actual carry the
// mismatching strings where the taxonomy calls for them.
type Error struct {
	Kind     Kind
	Expected string
	Actual   string
	Detail   string
	corr     uuid.UUID
}

func newError(kind Kind, expected, actual, detail string) *Error {
	return &Error{Kind: kind, Expected: expected, Actual: actual, Detail: detail, corr: uuid.New()}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Expected != "" || e.Actual != "":
		return fmt.Sprintf("atspi: %s: expected %q, got %q", e.Kind, e.Expected, e.Actual)
	case e.Detail != "":
		return fmt.Sprintf("atspi: %s: %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("atspi: %s", e.Kind)
	}
}

// Is supports errors.Is(err, atspi.ErrUnknownBusSignature) and friends by
// comparing only the Kind, not the instance-specific fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Format supports "%+v", surfacing the per-call correlation id so a decode
// failure can be matched back against a raw bus capture.
func (e *Error) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s (correlation-id=%s)", e.Error(), e.corr)
		return
	}
	fmt.Fprint(f, e.Error())
}

// Sentinel values for errors.Is comparisons; only Kind is significant.
var (
	ErrInterfaceMatch       = &Error{Kind: InterfaceMatch}
	ErrMemberMatch          = &Error{Kind: MemberMatch}
	ErrMissingInterface     = &Error{Kind: MissingInterface}
	ErrMissingMember        = &Error{Kind: MissingMember}
	ErrMissingSignature     = &Error{Kind: MissingSignature}
	ErrSignatureMatch       = &Error{Kind: SignatureMatch}
	ErrUnknownInterface     = &Error{Kind: UnknownInterface}
	ErrUnknownSignal        = &Error{Kind: UnknownSignal}
	ErrUnknownBusSignature  = &Error{Kind: UnknownBusSignature}
	ErrConversion           = &Error{Kind: Conversion}
	ErrVariantClone         = &Error{Kind: VariantClone}
)

// NewInterfaceMatch reports a message whose interface header disagreed with
// the target event's declared interface.
func NewInterfaceMatch(expected, actual string) *Error {
	return newError(InterfaceMatch, expected, actual, "")
}

// NewMemberMatch reports a message whose member header disagreed with the
// target event's declared member.
func NewMemberMatch(expected, actual string) *Error {
	return newError(MemberMatch, expected, actual, "")
}

// NewMissingInterface reports a message with no interface header.
func NewMissingInterface() *Error { return newError(MissingInterface, "", "", "") }

// NewMissingMember reports a message with no member header.
func NewMissingMember() *Error { return newError(MissingMember, "", "", "") }

// NewMissingSignature reports a message body with no signature header.
func NewMissingSignature() *Error { return newError(MissingSignature, "", "", "") }

// NewSignatureMatch reports a recognized but wrong-for-this-member body
// signature, e.g. Cache.AddAccessible with an unrecognized add signature.
func NewSignatureMatch(expected, actual string) *Error {
	return newError(SignatureMatch, expected, actual, "")
}

// NewUnknownInterface reports a well-formed interface name outside the
// seven known event-group interfaces.
func NewUnknownInterface(actual string) *Error {
	return newError(UnknownInterface, "", actual, "")
}

// NewUnknownSignal reports an (so)/(ss) bodied message with a member that
// matches none of the members that shape supports.
func NewUnknownSignal(actual string) *Error {
	return newError(UnknownSignal, "", actual, "")
}

// NewUnknownBusSignature reports a body signature outside the enumerated set.
func NewUnknownBusSignature(actual string) *Error {
	return newError(UnknownBusSignature, "", actual, "")
}

// NewConversion reports a failed sum-type projection (the stored variant was
// not the one requested) or a body field, header or Variant of the wrong type.
func NewConversion(detail string) *Error { return newError(Conversion, "", "", detail) }

// NewVariantClone reports an any_data Variant clone that failed because the
// process's file descriptor table was exhausted.
func NewVariantClone(detail string) *Error { return newError(VariantClone, "", "", detail) }
