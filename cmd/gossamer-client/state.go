// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ChainSafe/gossamer-client/config"
	"github.com/ChainSafe/gossamer-client/lib/genesis"
	"github.com/ChainSafe/gossamer-client/pkg/storage"
	"github.com/ChainSafe/gossamer-client/pkg/storage/badger"
	"github.com/prometheus/client_golang/prometheus"
)

// cacheTTL is the time values read from the state are cached for.
const cacheTTL = time.Minute

type warner interface {
	Warnf(format string, args ...interface{})
}

// state is the chain state read by the commands.
type state struct {
	reader   storage.Reader
	registry *prometheus.Registry
	closer   func() error
	logger   warner
}

// openState opens the chain state described by cfg. The memory backend
// is loaded from the genesis of the chain spec, if any.
func openState(cfg *config.Config) (*state, error) {
	s := &state{
		closer: func() error { return nil },
		logger: logger,
	}

	switch cfg.Chain.Database {
	case config.BadgerDatabase:
		backend, err := badger.New(badger.Settings{Path: cfg.StatePath()})
		if err != nil {
			return nil, err
		}
		s.reader = backend
		s.closer = backend.Close
	default:
		backend := storage.NewMemoryBackend()
		if cfg.Chain.Spec == "" {
			logger.Warn("no chain spec configured, reading from an empty state")
		} else {
			err := loadGenesis(cfg, backend)
			if err != nil {
				return nil, err
			}
		}
		s.reader = backend
	}

	if cfg.Chain.CacheSize > 0 {
		cache := storage.NewCachedReader(s.reader, cfg.Chain.CacheSize, cacheTTL)
		closeBackend := s.closer
		s.closer = func() error {
			cache.Stop()
			return closeBackend()
		}
		s.reader = cache
	}

	if cfg.Global.Metrics {
		s.registry = prometheus.NewRegistry()
		instrumented, err := storage.NewInstrumentedReader(s.reader, s.registry)
		if err != nil {
			s.close()
			return nil, err
		}
		s.reader = instrumented
	}

	return s, nil
}

// close releases the backend of the state. Failing to do so
// is logged since the commands have already printed their result.
func (s *state) close() {
	err := s.closer()
	if err != nil {
		s.logger.Warnf("closing state: %s", err)
	}
}

func loadGenesis(cfg *config.Config, writer storage.Writer) error {
	gen, err := genesis.NewGenesisFromJSONRaw(cfg.Chain.Spec)
	if err != nil {
		return fmt.Errorf("reading chain spec: %w", err)
	}
	logger.Infof("loading genesis state of %s (%s)", gen.Name, gen.ID)

	format, err := gen.SS58Format()
	switch {
	case err != nil:
		logger.Debugf("chain spec ss58 format: %s", err)
	case uint16(format) != cfg.Chain.SS58Prefix:
		logger.Warnf("chain spec ss58 format %d differs from configured prefix %d",
			format, cfg.Chain.SS58Prefix)
	}
	for _, endpoint := range gen.TelemetryEndpointList() {
		logger.Debugf("telemetry endpoint %s with verbosity %d", endpoint.Endpoint, endpoint.Verbosity)
	}

	return genesis.LoadState(gen, writer)
}

// logMetrics logs the counters gathered while the state was read.
func (s *state) logMetrics() {
	if s.registry == nil {
		return
	}

	families, err := s.registry.Gather()
	if err != nil {
		logger.Warnf("gathering metrics: %s", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			logger.Infof("%s{%s} %v", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
		}
	}
}
