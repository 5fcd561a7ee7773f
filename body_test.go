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
	. "gopkg.in/check.v1"
)

type BodySuite struct{}

var _ = Suite(&BodySuite{})

func (s *BodySuite) TestDecodeATSPIBodyRoundTrip(c *C) {
	raw := []interface{}{"focused", int32(1), int32(0), DefaultAnyData(), map[string]dbus.Variant{}}
	b, err := DecodeATSPIBody(raw)
	c.Assert(err, IsNil)
	c.Assert(b.Shape, Equals, ShapeATSPI)
	c.Assert(b.Kind, Equals, "focused")
	c.Assert(b.Detail1, Equals, int32(1))

	back := b.ToRaw()
	c.Assert(back[0], Equals, raw[0])
	c.Assert(back[1], Equals, raw[1])
}

func (s *BodySuite) TestDecodeQSPIBodyDiscardsPropertiesPair(c *C) {
	raw := []interface{}{"window:activate", int32(0), int32(0), DefaultAnyData(), NullObjectRef().Struct()}
	b, err := DecodeQSPIBody(raw)
	c.Assert(err, IsNil)
	c.Assert(b.Shape, Equals, ShapeQSPI)
	c.Assert(b.Signature(), Equals, SigQSPIEvent)
}

func (s *BodySuite) TestDecodeATSPIBodyRejectsWrongArity(c *C) {
	_, err := DecodeATSPIBody([]interface{}{"only one"})
	c.Assert(err, NotNil)
}

func (s *BodySuite) TestEqualIgnoresShapeAndProperties(c *C) {
	a := Body{Shape: ShapeATSPI, Kind: "k", Detail1: 1, Detail2: 2, AnyData: DefaultAnyData()}
	b := a.AsQSPI()
	c.Assert(a.Equal(b), Equals, true)
}

func (s *BodySuite) TestEqualDiffersOnAnyData(c *C) {
	a := Body{Kind: "k", AnyData: DefaultAnyData()}
	b := Body{Kind: "k", AnyData: dbus.MakeVariant(byte(1))}
	c.Assert(a.Equal(b), Equals, false)
}

func (s *BodySuite) TestItemOnlyRoundTrip(c *C) {
	item := ObjectRefFromPair(":1.3", dbus.ObjectPath("/org/a11y/atspi/accessible/obj"))
	msg := EncodeItemOnlyATSPI(item, "org.a11y.atspi.Event.Object", "StateChanged")

	got, err := DecodeItemOnly(msg)
	c.Assert(err, IsNil)
	c.Assert(got, Equals, item)
}

func (s *BodySuite) TestShapeString(c *C) {
	c.Assert(ShapeATSPI.String(), Equals, "ATSPI")
	c.Assert(ShapeQSPI.String(), Equals, "QSPI")
}
