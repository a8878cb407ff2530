// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/tuplegen/generator"
	"github.com/albertocavalcante/tuplegen/generators/cpp"
)

// defaultTarget is used when --target is not given.
const defaultTarget = "cpp"

func init() {
	generator.Register(cpp.NewGenerator())
}
