// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	caller  *CallerField
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

func (s *settings) addContext(key string, values ...string) {
	for i := range s.context {
		if s.context[i].key == key {
			s.context[i].values = append(s.context[i].values, values...)
			return
		}
	}
	s.context = append(s.context, contextKeyValues{key: key, values: values})
}

// mergeWith overrides the fields set in other and appends its context.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		level := *other.level
		s.level = &level
	}

	if other.caller != nil {
		caller := *other.caller
		s.caller = &caller
	}

	for _, kv := range other.context {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		s.addContext(kv.key, values...)
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Trace
		s.level = &level
	}

	if s.caller == nil {
		caller := CallerNone
		s.caller = &caller
	}
}
