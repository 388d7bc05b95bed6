package main

//go:generate go run ./gen -components 16

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/microecs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of entities to create.")
	maxComponents := flag.Int("max-components", 5, "The maximum number of components per entity.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	// 1. Build the generated system bank
	systems := newStressSystems()

	// 2. Populate the entity population with random component subsets
	log.Printf("Populating %d entities...\n", *entityCount)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	entities := make([]*ecs.Entity, 0, *entityCount)
	for i := 0; i < *entityCount; i++ {
		numComponents := rng.Intn(*maxComponents) + 1
		entities = append(entities, spawnRandomEntity(rng, numComponents))
	}
	log.Println("Population complete.")

	// 3. Run the processing loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     stressComponentCount,
		Systems:        len(systems),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			for _, sys := range systems {
				sys.ProcessAll(entities)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, sys := range systems {
		report.SystemReports = append(report.SystemReports, SystemReport{
			Name:  sys.Name(),
			Stats: sys.Stats(),
		})
	}

	log.Println("Run finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func spawnRandomEntity(rng *rand.Rand, numComponents int) *ecs.Entity {
	e := ecs.NewEntity()
	for j := 0; j < numComponents; j++ {
		emplaceStressComponent(e, rng.Intn(stressComponentCount))
	}
	return e
}
