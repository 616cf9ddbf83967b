// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// InstrumentedReader is a Reader counting the storage reads of another Reader.
type InstrumentedReader struct {
	reader Reader
	reads  *prometheus.CounterVec
}

// NewInstrumentedReader wraps reader and registers its read counter with registerer.
// Registering twice with the same registerer shares the counter.
func NewInstrumentedReader(reader Reader, registerer prometheus.Registerer) (*InstrumentedReader, error) {
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_client",
		Subsystem: "storage",
		Name:      "reads_total",
		Help:      "Number of storage reads by result, one of hit, miss or error.",
	}, []string{"result"})

	err := registerer.Register(reads)
	if err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegistered) {
			return nil, fmt.Errorf("registering storage reads counter: %w", err)
		}
		reads = alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
	}

	return &InstrumentedReader{
		reader: reader,
		reads:  reads,
	}, nil
}

// Storage reads the value at key from the wrapped reader.
func (r *InstrumentedReader) Storage(ctx context.Context, key Key) ([]byte, error) {
	value, err := r.reader.Storage(ctx, key)
	switch {
	case err != nil:
		r.reads.WithLabelValues(resultError).Inc()
	case value == nil:
		r.reads.WithLabelValues(resultMiss).Inc()
	default:
		r.reads.WithLabelValues(resultHit).Inc()
	}
	return value, err
}
