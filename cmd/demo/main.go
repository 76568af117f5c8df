// Command demo drives the threading layer through its two end-to-end
// scenarios: N workers incrementing a shared counter under one mutex, and
// producer/consumer handshakes over a condition variable. Scenario
// parameters come from flags or a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/comalice/threadx"
)

type scenario struct {
	Workers    int `yaml:"workers"`
	Increments int `yaml:"increments"`
	Handshakes int `yaml:"handshakes"`
	MaxThreads int `yaml:"maxThreads"`
}

func defaultScenario() scenario {
	return scenario{
		Workers:    8,
		Increments: 10000,
		Handshakes: 100,
	}
}

func loadScenario(path string) (scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario: %w", err)
	}
	return sc, nil
}

func main() {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Exercise the threadx primitives end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if sc.MaxThreads > 0 {
				threadx.SetMaxThreads(sc.MaxThreads)
				log.Info("thread cap set", "max", sc.MaxThreads)
			}

			var g errgroup.Group
			g.Go(func() error { return counterScenario(sc) })
			g.Go(func() error { return handshakeScenario(sc) })
			if err := g.Wait(); err != nil {
				return err
			}

			stats := threadx.Snapshot()
			log.Info("done",
				"created", stats.Created,
				"joined", stats.Joined,
				"active", stats.Active,
				"tid", threadx.OSThreadID(),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario file")

	if err := cmd.Execute(); err != nil {
		log.Fatal("demo failed", "err", err)
	}
}

// counterScenario spawns sc.Workers threads that each increment a shared
// counter sc.Increments times under one mutex, then verifies the total.
func counterScenario(sc scenario) error {
	m, err := threadx.NewMutex(threadx.MutexPlain)
	if err != nil {
		return err
	}
	defer m.Destroy()

	counter := 0
	threads := make([]*threadx.Thread, 0, sc.Workers)
	for i := 0; i < sc.Workers; i++ {
		th, err := threadx.Create(func() int {
			for j := 0; j < sc.Increments; j++ {
				if err := m.Lock(); err != nil {
					return 1
				}
				counter++
				if err := m.Unlock(); err != nil {
					return 1
				}
			}
			return 0
		})
		if err != nil {
			return fmt.Errorf("spawn worker %d: %w", i, err)
		}
		log.Debug("worker started", "id", th.ID())
		threads = append(threads, th)
	}

	if err := threadx.JoinAll(threads...); err != nil {
		return err
	}
	want := sc.Workers * sc.Increments
	if counter != want {
		return fmt.Errorf("counter scenario: expected %d, got %d", want, counter)
	}
	log.Info("counter scenario passed", "workers", sc.Workers, "total", counter)
	return nil
}

// handshakeScenario repeats the producer/consumer flag handshake: the
// producer sets a shared flag under the mutex and signals; the consumer
// waits on the condition until it observes the flag.
func handshakeScenario(sc scenario) error {
	for run := 0; run < sc.Handshakes; run++ {
		m, err := threadx.NewMutex(threadx.MutexPlain)
		if err != nil {
			return err
		}
		c, err := threadx.NewCond()
		if err != nil {
			return err
		}

		flag := false
		consumer, err := threadx.Create(func() int {
			if err := m.Lock(); err != nil {
				return 1
			}
			for !flag {
				if err := c.Wait(m); err != nil {
					return 1
				}
			}
			if err := m.Unlock(); err != nil {
				return 1
			}
			return 0
		})
		if err != nil {
			return err
		}

		producer, err := threadx.Create(func() int {
			if err := m.Lock(); err != nil {
				return 1
			}
			flag = true
			if err := c.Signal(); err != nil {
				return 1
			}
			if err := m.Unlock(); err != nil {
				return 1
			}
			return 0
		})
		if err != nil {
			return err
		}

		for _, th := range []*threadx.Thread{producer, consumer} {
			res, err := th.Join()
			if err != nil {
				return err
			}
			if res != 0 {
				return fmt.Errorf("handshake run %d: thread reported %d", run, res)
			}
		}
		c.Destroy()
		m.Destroy()
	}
	log.Info("handshake scenario passed", "runs", sc.Handshakes)
	return nil
}
