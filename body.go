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
	"reflect"

	"github.com/godbus/dbus/v5"
)

// Shape tags which of the two historical body encodings a Body was decoded
// from, or should be re-encoded as. The split is a toolkit artifact (GTK vs
// Qt); both shapes carry the same four meaningful fields, the shape only
// changes how the otherwise-unused properties slot is represented on the
// wire.
type Shape int

const (
	ShapeATSPI Shape = iota
	ShapeQSPI
)

func (s Shape) String() string {
	if s == ShapeQSPI {
		return "QSPI"
	}
	return "ATSPI"
}

// Body is the decoded, heap-owned form of an AT-SPI event body. Go has no
// borrow checker and godbus has already fully decoded a message's body into
// owned Go values before this package ever sees it, so there is no buffer
// left to borrow from -- unlike the reference implementation this type has
// no separate borrowed counterpart (see SPEC_FULL.md §7).
type Body struct {
	Shape   Shape
	Kind    string
	Detail1 int32
	Detail2 int32
	AnyData dbus.Variant
}

// DefaultAnyData is what an event that does not semantically use any_data
// emits: a byte 0, matching the reference GTK implementation's default.
func DefaultAnyData() dbus.Variant {
	return dbus.MakeVariant(byte(0))
}

// DecodeATSPIBody decodes a raw five-element body of signature
// "siiva{sv}"; the trailing a{sv} properties dictionary is discarded.
func DecodeATSPIBody(raw []interface{}) (Body, error) {
	if len(raw) != 5 {
		return Body{}, NewConversion("ATSPI body must have 5 top-level values")
	}
	kind, ok := raw[0].(string)
	if !ok {
		return Body{}, NewConversion("ATSPI body field 0 (kind) is not a string")
	}
	d1, ok := asInt32(raw[1])
	if !ok {
		return Body{}, NewConversion("ATSPI body field 1 (detail1) is not an int32")
	}
	d2, ok := asInt32(raw[2])
	if !ok {
		return Body{}, NewConversion("ATSPI body field 2 (detail2) is not an int32")
	}
	any, ok := raw[3].(dbus.Variant)
	if !ok {
		return Body{}, NewConversion("ATSPI body field 3 (any_data) is not a Variant")
	}
	return Body{Shape: ShapeATSPI, Kind: kind, Detail1: d1, Detail2: d2, AnyData: any}, nil
}

// DecodeQSPIBody decodes a raw five-element body of signature
// "siiv(so)"; the trailing (so) properties pair is discarded.
func DecodeQSPIBody(raw []interface{}) (Body, error) {
	if len(raw) != 5 {
		return Body{}, NewConversion("QSPI body must have 5 top-level values")
	}
	kind, ok := raw[0].(string)
	if !ok {
		return Body{}, NewConversion("QSPI body field 0 (kind) is not a string")
	}
	d1, ok := asInt32(raw[1])
	if !ok {
		return Body{}, NewConversion("QSPI body field 1 (detail1) is not an int32")
	}
	d2, ok := asInt32(raw[2])
	if !ok {
		return Body{}, NewConversion("QSPI body field 2 (detail2) is not an int32")
	}
	any, ok := raw[3].(dbus.Variant)
	if !ok {
		return Body{}, NewConversion("QSPI body field 3 (any_data) is not a Variant")
	}
	return Body{Shape: ShapeQSPI, Kind: kind, Detail1: d1, Detail2: d2, AnyData: any}, nil
}

func asInt32(v interface{}) (int32, bool) {
	i, ok := v.(int32)
	return i, ok
}

// DecodeBody reads msg's signature header and dispatches to DecodeATSPIBody
// or DecodeQSPIBody accordingly, so a decoded Body always carries the Shape
// it actually arrived as instead of assuming ATSPI. This is the deserialize
// step of spec.md §4.2: every inbound decode path routes through it rather
// than calling either shape-specific decoder directly.
func DecodeBody(msg *dbus.Message) (Body, error) {
	sig, ok := SignatureHeader(msg)
	if !ok {
		return Body{}, NewMissingSignature()
	}
	switch sig {
	case SigATSPIEvent:
		return DecodeATSPIBody(msg.Body)
	case SigQSPIEvent:
		return DecodeQSPIBody(msg.Body)
	default:
		return Body{}, NewUnknownBusSignature(sig)
	}
}

// ToRaw serializes the body in its declared Shape, filling the discarded
// properties slot with its form's empty placeholder.
func (b Body) ToRaw() []interface{} {
	switch b.Shape {
	case ShapeQSPI:
		return []interface{}{b.Kind, b.Detail1, b.Detail2, b.AnyData, NullObjectRef().Struct()}
	default:
		return []interface{}{b.Kind, b.Detail1, b.Detail2, b.AnyData, map[string]dbus.Variant{}}
	}
}

// Signature returns the whole-body wire signature for b's Shape.
func (b Body) Signature() string {
	if b.Shape == ShapeQSPI {
		return SigQSPIEvent
	}
	return SigATSPIEvent
}

// AsATSPI converts b to the ATSPI shape. The four meaningful fields carry
// across unchanged; the properties dictionary is always the empty
// placeholder on the way out.
func (b Body) AsATSPI() Body {
	b.Shape = ShapeATSPI
	return b
}

// AsQSPI converts b to the QSPI shape, filling the object-ref pair with the
// null reference.
func (b Body) AsQSPI() Body {
	b.Shape = ShapeQSPI
	return b
}

// Equal implements the cross-shape equality relation of spec.md §4.2:
// only kind, detail1, detail2 and any_data participate; the shape and the
// discarded properties slot never do.
func (b Body) Equal(other Body) bool {
	if b.Kind != other.Kind || b.Detail1 != other.Detail1 || b.Detail2 != other.Detail2 {
		return false
	}
	return variantEqual(b.AnyData, other.AnyData)
}

// DecodeItemOnly decodes a message's ObjectRef and body for a concrete
// event whose fields are just Item: the body is still fully validated
// (shape dispatch, field types) but every field beyond Item is discarded.
// This single helper backs every item-only concrete event across every
// per-interface package (most of Object, Window, Terminal, Document, and
// Focus's sole event) so that shape is never trusted without validation --
// a QSPI-shaped message is decoded as QSPI, not silently mistagged ATSPI.
func DecodeItemOnly(msg *dbus.Message) (ObjectRef, error) {
	item, err := ObjectRefFromHeader(msg)
	if err != nil {
		return ObjectRef{}, err
	}
	if _, err := DecodeBody(msg); err != nil {
		return ObjectRef{}, err
	}
	return item, nil
}

// EncodeItemOnlyATSPI builds the raw message for an item-only concrete
// event: every body field beyond Item takes its default value per
// spec.md §4.3's edge case for discarded fields.
func EncodeItemOnlyATSPI(item ObjectRef, iface, member string) *dbus.Message {
	headers := NewSignalHeaders(item, iface, member, SigATSPIEvent)
	body := Body{Shape: ShapeATSPI, AnyData: DefaultAnyData()}
	return NewSignalMessage(headers, body.ToRaw())
}

func variantEqual(a, b dbus.Variant) bool {
	if a.Signature() != b.Signature() {
		return false
	}
	return reflect.DeepEqual(a.Value(), b.Value())
}
