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
	. "gopkg.in/check.v1"
)

type ConstantsSuite struct{}

var _ = Suite(&ConstantsSuite{})

func (s *ConstantsSuite) TestMemberMatchRule(c *C) {
	got := MemberMatchRule(InterfaceObject, "StateChanged")
	c.Assert(got, Equals, "type='signal',interface='org.a11y.atspi.Event.Object',member='StateChanged'")
}

func (s *ConstantsSuite) TestInterfaceMatchRuleHasNoMemberClause(c *C) {
	got := InterfaceMatchRule(InterfaceWindow)
	c.Assert(got, Equals, "type='signal',interface='org.a11y.atspi.Event.Window'")
}

func (s *ConstantsSuite) TestRegistryEventString(c *C) {
	c.Assert(RegistryEventString("object", "state-changed"), Equals, "object:state-changed")
}

func (s *ConstantsSuite) TestInterfaceRegistryPrefix(c *C) {
	c.Assert(InterfaceRegistryPrefix("Object"), Equals, "Object:")
}
