package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/peter-kozarec/cyclic/internal/dbg"
	"github.com/peter-kozarec/cyclic/pkg/rolling"
	"github.com/peter-kozarec/cyclic/pkg/roundrobin"
)

func main() {
	workers := flag.Int("workers", 4, "number of worker slots")
	jobs := flag.Int("jobs", 1000, "number of jobs to dispatch")
	window := flag.Int("window", 256, "latency window per worker")
	dev := flag.Bool("dev", false, "development logging")
	flag.Parse()

	logger := dbg.NewLogger(*dev)
	defer func() { _ = logger.Sync() }()

	names := make([]string, *workers)
	for i := range names {
		names[i] = fmt.Sprintf("worker-%d", i)
	}

	balancer, err := roundrobin.New(logger, names...)
	if err != nil {
		logger.Fatal("unable to create balancer", zap.Error(err))
	}

	latencies := make(map[string]*rolling.Stats, *workers)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < *jobs; i++ {
		slot := balancer.Next()

		ms, err := decimal.NewFromFloat64(5 + rng.Float64()*20)
		if err != nil {
			logger.Fatal("unable to convert latency", zap.Error(err))
		}

		stats, ok := latencies[slot.Value]
		if !ok {
			stats = rolling.NewStats(*window)
			latencies[slot.Value] = stats
		}
		if err := stats.Push(ms); err != nil {
			logger.Fatal("unable to record latency", zap.Error(err))
		}
	}

	for _, name := range names {
		stats, ok := latencies[name]
		if !ok {
			continue
		}
		minVal, _ := stats.Min()
		maxVal, _ := stats.Max()
		logger.Info("worker latency",
			zap.String("worker", name),
			zap.Int("samples", stats.Size()),
			zap.Stringer("mean_ms", stats.Mean()),
			zap.Stringer("std_dev_ms", stats.StdDev()),
			zap.Stringer("min_ms", minVal),
			zap.Stringer("max_ms", maxVal))
	}
}
