// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures shared by the tuple header
// generators.
//
// A generation run is described by a [Request]. The emitter walks the
// member counts of the request one [Case] at a time, renders each case once
// per [Family], and collects the result into an [Artifact].
package model

import (
	"bytes"
	"fmt"
)

// Request describes a single generation run.
type Request struct {
	// OutputPath is the file the artifact is written to.
	OutputPath string

	// MaxMemberCount is the inclusive upper bound of generated cases.
	// Values below 1 produce an artifact without cases.
	MaxMemberCount int
}

// Cases returns the member count cases for counts 1..MaxMemberCount,
// in increasing order. The slots of each case are named by slotName.
func (r Request) Cases(slotName func(int) string) []Case {
	if r.MaxMemberCount < 1 {
		return nil
	}
	cases := make([]Case, 0, r.MaxMemberCount)
	for k := 1; k <= r.MaxMemberCount; k++ {
		cases = append(cases, NewCase(k, slotName))
	}
	return cases
}

// Family selects the access mode of the generated tuple view.
type Family int

const (
	// Const binds the members of a const-qualified aggregate.
	Const Family = iota
	// Mutable binds the members of a non-const aggregate.
	Mutable
)

// Families lists every family in emission order.
var Families = []Family{Const, Mutable}

func (f Family) String() string {
	switch f {
	case Const:
		return "const"
	case Mutable:
		return "mutable"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Case is the rendering input for a single member count.
type Case struct {
	// Count is the number of aggregate members handled by this case.
	Count int

	// Slots are the binding names, in positional order.
	Slots []string
}

// NewCase builds the case for count k, naming slot i with slotName(i).
func NewCase(k int, slotName func(int) string) Case {
	slots := make([]string, k)
	for i := range slots {
		slots[i] = slotName(i)
	}
	return Case{Count: k, Slots: slots}
}

// Artifact is the generated header split into its fixed sections.
type Artifact struct {
	Preamble string
	Const    string
	Mutable  string
	Closing  string
}

// Family returns the rendered function text for f.
func (a *Artifact) Family(f Family) string {
	if f == Const {
		return a.Const
	}
	return a.Mutable
}

// SetFamily stores the rendered function text for f.
func (a *Artifact) SetFamily(f Family, text string) {
	if f == Const {
		a.Const = text
		return
	}
	a.Mutable = text
}

// Bytes concatenates the sections in emission order.
func (a *Artifact) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(len(a.Preamble) + len(a.Const) + len(a.Mutable) + len(a.Closing))
	buf.WriteString(a.Preamble)
	for _, f := range Families {
		buf.WriteString(a.Family(f))
	}
	buf.WriteString(a.Closing)
	return buf.Bytes()
}
