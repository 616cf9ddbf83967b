// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CallerField selects which parts of the calling site are appended to a log line.
type CallerField uint8

const (
	// CallerFile appends the base name of the calling file.
	CallerFile CallerField = 1 << iota
	// CallerLine appends the line number prefixed with L.
	CallerLine
	// CallerFunc appends the calling function name.
	CallerFunc
)

// CallerNone disables caller information.
const CallerNone CallerField = 0

func (c CallerField) has(field CallerField) bool { return c&field != 0 }

// callerDepth is the number of frames between the public log methods and runtime.Caller.
const callerDepth = 3

func callerString(fields CallerField) string {
	if fields == CallerNone {
		return ""
	}

	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "error"
	}

	parts := make([]string, 0, 3)
	if fields.has(CallerFile) {
		parts = append(parts, filepath.Base(file))
	}
	if fields.has(CallerLine) {
		parts = append(parts, "L"+strconv.Itoa(line))
	}
	if fields.has(CallerFunc) {
		if details := runtime.FuncForPC(pc); details != nil {
			parts = append(parts, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}
	return strings.Join(parts, ":")
}
