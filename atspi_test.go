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
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type ATSuite struct{}

var _ = Suite(&ATSuite{})

func (s *ATSuite) TestNullObjectRef(c *C) {
	ref := NullObjectRef()
	c.Assert(ref.Name, Equals, NullBusName)
	c.Assert(ref.Path, Equals, NullPath)
}

func (s *ATSuite) TestObjectRefFromPair(c *C) {
	ref := ObjectRefFromPair(":1.5", dbus.ObjectPath("/org/a11y/atspi/accessible/root"))
	c.Assert(ref.Name, Equals, ":1.5")
	c.Assert(ref.Path, Equals, dbus.ObjectPath("/org/a11y/atspi/accessible/root"))
}

func (s *ATSuite) TestObjectRefVariantRoundTrip(c *C) {
	ref := ObjectRefFromPair(":1.7", dbus.ObjectPath("/org/a11y/atspi/accessible/obj"))
	v := ref.Variant()
	got, err := ObjectRefFromVariant(v)
	c.Assert(err, IsNil)
	c.Assert(got, Equals, ref)
}

func (s *ATSuite) TestObjectRefFromVariantRejectsWrongSignature(c *C) {
	_, err := ObjectRefFromVariant(dbus.MakeVariant(uint32(3)))
	c.Assert(err, NotNil)

	var ae *Error
	c.Assert(errors.As(err, &ae), Equals, true)
	c.Assert(ae.Kind, Equals, Conversion)
}

func (s *ATSuite) TestObjectRefFromHeaderRequiresSender(c *C) {
	headers := map[dbus.HeaderField]dbus.Variant{
		dbus.FieldPath:      dbus.MakeVariant(dbus.ObjectPath("/org/a11y/atspi/accessible/obj")),
		dbus.FieldInterface: dbus.MakeVariant("org.a11y.atspi.Event.Object"),
		dbus.FieldMember:    dbus.MakeVariant("StateChanged"),
	}
	msg := NewSignalMessage(headers, nil)
	_, err := ObjectRefFromHeader(msg)
	c.Assert(err, NotNil)
}

func (s *ATSuite) TestObjectRefFromHeaderSubstitutesNullPath(c *C) {
	headers := map[dbus.HeaderField]dbus.Variant{
		dbus.FieldInterface: dbus.MakeVariant("org.a11y.atspi.Event.Object"),
		dbus.FieldMember:    dbus.MakeVariant("StateChanged"),
		dbus.FieldSender:    dbus.MakeVariant(":1.9"),
	}
	msg := NewSignalMessage(headers, nil)

	ref, err := ObjectRefFromHeader(msg)
	c.Assert(err, IsNil)
	c.Assert(ref.Name, Equals, ":1.9")
	c.Assert(ref.Path, Equals, NullPath)
}

func (s *ATSuite) TestErrorKindString(c *C) {
	c.Assert(UnknownBusSignature.String(), Equals, "UnknownBusSignature")
	c.Assert(Kind(999).String(), Equals, "Unknown")
}

func (s *ATSuite) TestErrorIsComparesKindOnly(c *C) {
	err := NewUnknownInterface("org.a11y.atspi.Event.Bogus")
	c.Assert(errors.Is(err, ErrUnknownInterface), Equals, true)
	c.Assert(errors.Is(err, ErrMissingMember), Equals, false)
}

func (s *ATSuite) TestErrorFormatPlusVIncludesCorrelationID(c *C) {
	err := NewConversion("boom")
	plain := err.Error()
	verbose := fmt.Sprintf("%+v", err)
	c.Assert(verbose, Not(Equals), plain)
	c.Assert(len(verbose) > len(plain), Equals, true)
}
