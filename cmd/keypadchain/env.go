package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/keypadchain/config"
	"github.com/katalvlaran/keypadchain/logging"
	"github.com/katalvlaran/keypadchain/oracle"
	"github.com/katalvlaran/keypadchain/sequence"
)

// Replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// env is what every command needs once flags and configuration are merged.
type env struct {
	cfg    config.Config
	oracle *oracle.Oracle
	agg    *sequence.Aggregator
	closer io.Closer
}

// setup loads the configuration file (if any), lets depth >= 0 override the
// configured depth, applies the global log flags, installs the logger and
// builds the oracle and aggregator.
func setup(depth int, unitWeight bool) (*env, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if depth >= 0 {
		cfg.Depth = depth
	}
	if unitWeight {
		cfg.Weight = config.WeightUnit
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}
	log.Logger = logger

	o, err := oracle.New(oracle.WithLogger(logger))
	if err != nil {
		closer.Close()
		return nil, err
	}
	weight := sequence.NumericWeight
	if cfg.Weight == config.WeightUnit {
		weight = sequence.UnitWeight
	}
	agg, err := sequence.NewAggregator(o,
		sequence.WithWeight(weight),
		sequence.WithLogger(logger),
		sequence.WithWorkers(cfg.Workers),
		sequence.WithMaxExpansion(cfg.MaxExpansion),
	)
	if err != nil {
		closer.Close()
		return nil, err
	}

	return &env{cfg: cfg, oracle: o, agg: agg, closer: closer}, nil
}
