// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cpp generates the C++ header that turns an aggregate into a tuple
// of references to its members.
//
// The language has no way to destructure an arbitrary number of members, so
// the header enumerates one `if constexpr` case per member count up to a
// fixed maximum. Two overloads are emitted, one for const and one for
// mutable aggregates:
//
//	template <flex::aggregate T>
//	constexpr auto makeAggregateMembersTuple(const T &value) {
//		constexpr std::size_t size {flex::reflection::aggregate_members_count_v<T>};
//		if constexpr (size == 2) {
//			const auto &[m0,m1] {value};
//			return std::tie(m0,m1);
//		}
//	}
package cpp

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/tuplegen/internal/naming"
	"github.com/albertocavalcante/tuplegen/model"
)

// Codegen renders the aggregate members tuple header.
type Codegen struct {
	config Config
}

// New creates a new C++ Codegen.
func New(cfg Config) *Codegen {
	return &Codegen{config: cfg}
}

// Generate renders the header for req.
func (g *Codegen) Generate(req model.Request) (*model.Artifact, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	cases := req.Cases(naming.Slotter(g.config.SlotPrefix))

	a := &model.Artifact{
		Preamble: g.preamble(req.MaxMemberCount),
		Closing:  "} // namespace " + g.config.Namespace,
	}
	for _, f := range model.Families {
		a.SetFamily(f, g.function(f, cases))
	}
	return a, nil
}

func (g *Codegen) preamble(maxMemberCount int) string {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")

	b.WriteString("#include <cstddef>\n")
	b.WriteString("#include <tuple>\n")
	b.WriteString("#include <type_traits>\n\n")

	fmt.Fprintf(&b, "#include \"%s\"\n\n\n", g.config.Include)

	fmt.Fprintf(&b, "#define %s %d\n\n", g.config.Macro, maxMemberCount)

	fmt.Fprintf(&b, "namespace %s {\n", g.config.Namespace)
	return b.String()
}

// function renders one overload with a case per entry of cases.
func (g *Codegen) function(f model.Family, cases []model.Case) string {
	var b strings.Builder

	param := "T &value"
	if f == model.Const {
		param = "const T &value"
	}

	fmt.Fprintf(&b, "\ttemplate <%s T>\n", g.config.Concept)
	fmt.Fprintf(&b, "\tconstexpr auto %s(%s) {\n", g.config.Function, param)
	fmt.Fprintf(&b, "\t\tconstexpr std::size_t size {%s<T>};\n", g.config.Trait)
	for _, c := range cases {
		writeCase(&b, f, c)
	}
	b.WriteString("\t}\n\n")

	// The const overload is separated from its sibling by two blank lines.
	if f == model.Const {
		b.WriteString("\n")
	}
	return b.String()
}

func writeCase(b *strings.Builder, f model.Family, c model.Case) {
	binding := "auto &"
	if f == model.Const {
		binding = "const auto &"
	}
	args := naming.JoinArgs(c.Slots)

	fmt.Fprintf(b, "\t\tif constexpr (size == %d) {\n", c.Count)
	fmt.Fprintf(b, "\t\t\t%s[%s] {value};\n", binding, args)
	fmt.Fprintf(b, "\t\t\treturn std::tie(%s);\n", args)
	b.WriteString("\t\t}\n")
}
