// treebench builds random multiway trees and measures the throughput of
// structural edits and traversals.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/TheStefan/c-algorithms/tree"
)

// config is the benchmark profile, loadable from YAML.
type config struct {
	// Seed for the tree shape and the edit sequence.
	Seed uint64 `yaml:"seed"`

	// Nodes in the generated tree.
	Nodes int `yaml:"nodes"`

	// Mutations is the number of detach/reattach edits.
	Mutations int `yaml:"mutations"`

	// Traversals is the number of full passes per walker kind.
	Traversals int `yaml:"traversals"`
}

func defaultConfig() config {
	return config{
		Seed:       1,
		Nodes:      100000,
		Mutations:  100000,
		Traversals: 100,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

type result struct {
	name string
	dur  time.Duration
	ops  int
}

func (r result) row() []string {
	opsPerSec := float64(r.ops) / r.dur.Seconds()
	return []string{
		r.name,
		r.dur.Round(time.Microsecond).String(),
		fmt.Sprintf("%d", r.ops),
		fmt.Sprintf("%.0f", opsPerSec),
	}
}

func measure(name string, ops int, f func()) result {
	start := time.Now()
	f()
	return result{name: name, dur: time.Since(start), ops: ops}
}

func main() {
	var configPath string
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:   "treebench",
		Short: "benchmark multiway tree edits and traversals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return run(cmd, cfg)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "YAML benchmark profile")
	root.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	root.Flags().IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "tree size")
	root.Flags().IntVar(&cfg.Mutations, "mutations", cfg.Mutations, "detach/reattach edits")
	root.Flags().IntVar(&cfg.Traversals, "traversals", cfg.Traversals, "full passes per walker")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg config) error {
	fmt.Printf("treebench: %d nodes, seed %d, go %s\n\n", cfg.Nodes, cfg.Seed, runtime.Version())

	rng := rand.New(rand.NewSource(cfg.Seed))
	var results []result

	var root *tree.Node[int]
	var nodes []*tree.Node[int]
	results = append(results, measure("build", cfg.Nodes, func() {
		root = tree.New(0)
		nodes = make([]*tree.Node[int], 1, cfg.Nodes)
		nodes[0] = root
		for i := 1; i < cfg.Nodes; i++ {
			parent := nodes[rng.Intn(len(nodes))]
			nodes = append(nodes, parent.AddChild(i))
		}
	}))

	results = append(results, measure("detach+reattach", cfg.Mutations, func() {
		if len(nodes) < 2 {
			return
		}
		for i := 0; i < cfg.Mutations; i++ {
			n := nodes[1+rng.Intn(len(nodes)-1)]
			n.Detach()
			// Reattach under a node outside the detached subtree.
			for {
				target := nodes[rng.Intn(len(nodes))]
				if !target.IsDescendantOf(n) {
					if err := target.AddSubtree(n); err != nil {
						return
					}
					break
				}
			}
		}
	}))

	walks := []struct {
		name string
		make func() *tree.Walker[int]
	}{
		{"preorder", func() *tree.Walker[int] { return tree.WalkPreorder(root) }},
		{"postorder", func() *tree.Walker[int] { return tree.WalkPostorder(root) }},
		{"leaves", func() *tree.Walker[int] { return tree.WalkLeaves(root) }},
	}
	for _, wk := range walks {
		results = append(results, measure("walk "+wk.name, cfg.Traversals*cfg.Nodes, func() {
			for i := 0; i < cfg.Traversals; i++ {
				w := wk.make()
				for w.HasNext() {
					w.Next()
				}
			}
		}))
	}

	results = append(results, measure("parent chains", len(nodes), func() {
		for _, n := range nodes {
			w := tree.WalkParents(root, n)
			for w.HasNext() {
				w.Next()
			}
		}
	}))

	tw := tablewriter.NewWriter(cmd.OutOrStdout())
	tw.SetHeader([]string{"benchmark", "time", "ops", "ops/sec"})
	for _, r := range results {
		tw.Append(r.row())
	}
	tw.Render()
	return nil
}
