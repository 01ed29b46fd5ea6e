// main.go: Profiler for the cyclefmt rotating buffer library
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/agilira/cyclefmt"
)

// Workload describes one profiler run. It is loaded from
// cyclefmt-workload.yaml when present, otherwise defaults apply.
type Workload struct {
	Workers int `yaml:"workers"`
	// Duration is a time.ParseDuration string, e.g. "5s"
	Duration  string `yaml:"duration"`
	SlotCount int    `yaml:"slot_count"`
	// Mix is the percentage split between render shapes; the three
	// values should sum to 100.
	Mix struct {
		Small   int `yaml:"small"`   // short mixed-arg log line
		Large   int `yaml:"large"`   // ~1 KB payload render
		Numeric int `yaml:"numeric"` // numbers-only render
	} `yaml:"mix"`
}

func defaultWorkload() Workload {
	w := Workload{
		Workers:   8,
		Duration:  "5s",
		SlotCount: cyclefmt.DefaultSlotCount,
	}
	w.Mix.Small = 70
	w.Mix.Large = 10
	w.Mix.Numeric = 20
	return w
}

// loadWorkload reads cyclefmt-workload.yaml from the working directory and
// returns the workload plus its parsed run duration
func loadWorkload(logger *zap.Logger) (Workload, time.Duration) {
	w := defaultWorkload()
	data, err := os.ReadFile("cyclefmt-workload.yaml")
	if err != nil {
		logger.Info("no workload file, using defaults")
		return w, 5 * time.Second
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		logger.Warn("invalid workload file, using defaults", zap.Error(err))
		return defaultWorkload(), 5 * time.Second
	}
	if w.Workers <= 0 {
		w.Workers = 8
	}
	duration, err := time.ParseDuration(w.Duration)
	if err != nil || duration <= 0 {
		logger.Warn("invalid duration in workload file, using 5s", zap.String("duration", w.Duration))
		duration = 5 * time.Second
	}
	logger.Info("workload loaded from cyclefmt-workload.yaml")
	return w, duration
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	workload, runDuration := loadWorkload(logger)
	logger.Info("starting profiler",
		zap.Int("workers", workload.Workers),
		zap.Duration("duration", runDuration),
		zap.Int("slot_count", workload.SlotCount))

	cpuFile, err := os.Create("cpu.prof")
	if err == nil {
		_ = pprof.StartCPUProfile(cpuFile)
		defer func() {
			pprof.StopCPUProfile()
			// Ignore close error for profiling tool
			_ = cpuFile.Close()
		}()
	}

	registry := cyclefmt.NewRegistry(cyclefmt.Config{
		SlotCount: workload.SlotCount,
		Logger:    cyclefmt.NewZapLogger(logger), // production level drops the hot debug events
	})
	defer registry.TeardownAll()

	largePayload := strings.Repeat("x", 1024)

	var totalOps int64
	stats := make([]opStat, workload.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), runDuration)
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	for i := 0; i < workload.Workers; i++ {
		id := i
		group.Go(func() error {
			owner := fmt.Sprintf("worker-%d", id)
			pool := registry.Acquire(owner)
			defer registry.Release(owner)

			// Use math/rand for workload mixing - cryptographic security not needed
			// nosec G404 - This is a performance profiler, not a security-critical application
			localRand := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			ops := 0
			for {
				select {
				case <-ctx.Done():
					logger.Info("worker finished", zap.Int("worker", id), zap.Int("ops", ops))
					return nil
				default:
					pick := localRand.Intn(100)
					opStart := time.Now()
					var renderErr error
					switch {
					case pick < workload.Mix.Small:
						_, renderErr = pool.Render("req %d from %s took %dms",
							cyclefmt.Int(ops), cyclefmt.String("10.0.0.1"), cyclefmt.Int(pick))
					case pick < workload.Mix.Small+workload.Mix.Large:
						_, renderErr = pool.Render("payload[%d]: %s",
							cyclefmt.Int(ops), cyclefmt.String(largePayload))
					default:
						_, renderErr = pool.Render("%d/%d/%x",
							cyclefmt.Int(ops), cyclefmt.Int(pick), cyclefmt.Uint(uint64(ops)))
					}
					if renderErr != nil {
						return fmt.Errorf("worker %d: %w", id, renderErr)
					}
					stats[id].Record(time.Since(opStart))
					atomic.AddInt64(&totalOps, 1)
					ops++
				}
			}
		})
	}

	if err := group.Wait(); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
	elapsed := time.Since(start)

	var total opStat
	for i := range stats {
		total.Merge(&stats[i])
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	fmt.Println("--- Results ---")
	fmt.Printf("Total renders: %d\n", totalOps)
	fmt.Printf("Render: avg=%v min=%v max=%v\n", total.Avg(), total.Min, total.Max)
	fmt.Printf("Ops/sec: %.2f\n", float64(totalOps)/elapsed.Seconds())
	fmt.Printf("Heap alloc: %d MB, GCs: %d, GC fraction: %.2f%%\n",
		memStats.HeapAlloc/1024/1024, memStats.NumGC, memStats.GCCPUFraction*100)

	exportCSV(totalOps, &total, elapsed, &memStats)
	exportJSON(totalOps, &total, elapsed, &memStats)
}

// exportCSV writes the run results to cyclefmt_results.csv
func exportCSV(totalOps int64, total *opStat, elapsed time.Duration, memStats *runtime.MemStats) {
	csvFile, err := os.Create("cyclefmt_results.csv")
	if err != nil {
		return
	}
	defer func() { _ = csvFile.Close() }()
	writer := csv.NewWriter(csvFile)
	defer writer.Flush()

	// Write CSV data - ignore write errors for profiling tool
	_ = writer.Write([]string{"metric", "value"})
	_ = writer.Write([]string{"total_renders", fmt.Sprintf("%d", totalOps)})
	_ = writer.Write([]string{"render_avg_ns", fmt.Sprintf("%d", total.Avg().Nanoseconds())})
	_ = writer.Write([]string{"ops_per_sec", fmt.Sprintf("%.2f", float64(totalOps)/elapsed.Seconds())})
	_ = writer.Write([]string{"heap_alloc_mb", fmt.Sprintf("%d", memStats.HeapAlloc/1024/1024)})
	_ = writer.Write([]string{"gc_count", fmt.Sprintf("%d", memStats.NumGC)})
	_ = writer.Write([]string{"gc_fraction", fmt.Sprintf("%.2f", memStats.GCCPUFraction*100)})
}

// exportJSON writes the run results to cyclefmt_results.json
func exportJSON(totalOps int64, total *opStat, elapsed time.Duration, memStats *runtime.MemStats) {
	jsonData := map[string]interface{}{
		"total_renders": totalOps,
		"render_avg_ns": total.Avg().Nanoseconds(),
		"render_min_ns": total.Min.Nanoseconds(),
		"render_max_ns": total.Max.Nanoseconds(),
		"ops_per_sec":   float64(totalOps) / elapsed.Seconds(),
		"heap_alloc_mb": memStats.HeapAlloc / 1024 / 1024,
		"gc_count":      memStats.NumGC,
		"gc_fraction":   memStats.GCCPUFraction * 100,
	}
	jsonFile, err := os.Create("cyclefmt_results.json")
	if err != nil {
		return
	}
	defer func() { _ = jsonFile.Close() }()
	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	// Ignore encode error for profiling tool
	_ = encoder.Encode(jsonData)
}

// opStat keeps track of latency metrics for an operation type
type opStat struct {
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
	Count int64
}

// Record registers a single operation latency into the statistics
func (s *opStat) Record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Merge folds another worker's statistics into s
func (s *opStat) Merge(o *opStat) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Total += o.Total
	s.Count += o.Count
}

// Avg returns the average latency for the recorded operations
func (s *opStat) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return time.Duration(int64(s.Total) / s.Count)
}
