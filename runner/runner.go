package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"TxVisualizer/internal/platform/client"
	"TxVisualizer/internal/platform/server/handler/scenario"
)

type RunStats struct {
	Runs             int
	CleanRuns        int
	Transfers        int
	FailedTransfers  int
	FailuresByReason map[string]int
	Durations        []float64
	StartTime        time.Time
	EndTime          time.Time
	mu               sync.Mutex
}

func (s *RunStats) AddRun(resp *scenario.RunScenarioResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Runs++
	if resp.Verdict.AllSucceeded {
		s.CleanRuns++
	}
	for _, o := range resp.Outcomes {
		s.Transfers++
		if !o.Success {
			s.FailedTransfers++
			s.FailuresByReason[o.Reason]++
			continue
		}
		s.Durations = append(s.Durations, o.Seconds)
	}
}

func (s *RunStats) Percentiles() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Durations) == 0 {
		return make(map[string]float64)
	}
	sort.Float64s(s.Durations)
	at := func(q float64) float64 {
		return s.Durations[int(float64(len(s.Durations)-1)*q)]
	}
	return map[string]float64{"p50": at(0.50), "p90": at(0.90), "p99": at(0.99)}
}

func worker(id int, c *client.SimulatorClient, name string, amounts []string, runs int,
	stats *RunStats, wg *sync.WaitGroup) {
	defer wg.Done()

	for i := 0; i < runs; i++ {
		resp, err := c.RunScenario(name, amounts)
		if err != nil {
			log.Printf("Worker %d run %d failed: %v", id, i, err)
			continue
		}
		stats.AddRun(resp)
		fmt.Printf("[worker %d] %s: %s\n", id, resp.BatchId, resp.Verdict.Message)
	}
}

func printResults(c *client.SimulatorClient, name string, stats *RunStats) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("SCENARIO %s\n", strings.ToUpper(name))
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("Elapsed: %v\n", stats.EndTime.Sub(stats.StartTime))
	fmt.Printf("Runs: %d (%d without deadlocks)\n", stats.Runs, stats.CleanRuns)
	fmt.Printf("Transfers: %d, failed: %d\n", stats.Transfers, stats.FailedTransfers)
	for reason, n := range stats.FailuresByReason {
		fmt.Printf("  %s: %d\n", reason, n)
	}

	percentiles := stats.Percentiles()
	if len(percentiles) > 0 {
		fmt.Println("\nTRANSFER TIME PERCENTILES:")
		for _, p := range []string{"p50", "p90", "p99"} {
			fmt.Printf("%s: %.2fs\n", p, percentiles[p])
		}
	}

	accounts, err := c.Accounts(name)
	if err != nil {
		log.Printf("Reading balances: %v", err)
	} else {
		fmt.Println("\nBALANCES:")
		for _, a := range accounts {
			fmt.Printf("%-10s priority %d  $%s\n", a.Name, a.Priority, a.Balance)
		}
	}
	fmt.Println(strings.Repeat("=", 60))
}

func main() {
	var (
		url      = flag.String("url", "http://localhost:3000", "simulator server address")
		name     = flag.String("scenario", "deadlock", "scenario to run")
		amounts  = flag.String("amounts", "", "comma separated amount per transfer pair")
		workers  = flag.Int("workers", 1, "number of concurrent batches")
		runs     = flag.Int("runs", 1, "batches per worker")
		listOnly = flag.Bool("list", false, "list scenarios and exit")
	)
	flag.Parse()

	c := client.NewSimulatorClient(*url)
	if *listOnly {
		scenarios, err := c.Scenarios()
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range scenarios {
			fmt.Printf("%-12s %s\n", s.Name, s.Description)
		}
		return
	}

	var parsed []string
	if *amounts != "" {
		parsed = strings.Split(*amounts, ",")
	}

	stats := &RunStats{FailuresByReason: make(map[string]int), StartTime: time.Now()}
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go worker(i, c, *name, parsed, *runs, stats, &wg)
	}
	wg.Wait()
	stats.EndTime = time.Now()

	printResults(c, *name, stats)
}
