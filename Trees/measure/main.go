// treemeasure builds trees from the command line and times remove and
// lookup workloads on them.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func main() {
	testing.Init()

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time removals and lookups on a tree",
		Long:  "Bench runs the workload in --config, or the default one, once per step and prints the average time per op.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w, err := LoadWorkload(cmd.Flag("config").Value.String())
			if err != nil {
				log.Fatalf("Error loading workload: %v", err)
			}
			log.Printf("Measuring %s tree of %d values in %d steps", w.Kind, w.Size, w.Steps)
			bar := progressbar.NewOptions(w.Steps,
				progressbar.OptionSetDescription("measuring"),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWriter(os.Stderr),
			)
			cs := make([]float64, 0, w.Steps)
			for i := 1; i <= w.Steps; i++ {
				br := testing.Benchmark(benchmark(w, i))
				cs = append(cs, float64(br.NsPerOp())/float64(time.Millisecond))
				bar.Add(1)
			}
			bar.Finish()
			avg, stddev := summary(cs)
			fmt.Printf("\naverage: %fms/op\n", avg)
			fmt.Printf("stddev: %fms/op\n", stddev)
		},
	}
	cmdBench.Flags().StringP("config", "c", "", "workload yaml file")

	var cmdDump = &cobra.Command{
		Use:   "dump [values...]",
		Short: "Build a tree from integers and print it",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := dump(os.Stdout, cmd.Flag("kind").Value.String(), args); err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
		},
	}
	cmdDump.Flags().StringP("kind", "k", "avl", "tree to build: avl or bst")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Print the default workload",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			data, err := defaultWorkload.Marshal()
			if err != nil {
				log.Fatalf("Error writing workload: %v", err)
			}
			os.Stdout.Write(data)
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "treemeasure",
		Short: "Build and measure binary search trees",
	}
	rootCmd.AddCommand(cmdBench, cmdDump, cmdConfig)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// dump adds args to a new tree of kind, in order, and writes it to out.
func dump(out io.Writer, kind string, args []string) error {
	tree, err := newTree(kind)
	if err != nil {
		return err
	}
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("not an integer %q: %w", a, err)
		}
		if err = tree.Add(v); err != nil {
			log.Printf("Skipping %d: %v", v, err)
		}
	}
	if w, ok := tree.(io.WriterTo); ok {
		if _, err = w.WriteTo(out); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "in-order: %v\nheight: %d\nbalanced: %t\n",
		tree.ToSlice(Trees.InOrder, false), tree.Height(), tree.IsBalanced())
	return err
}
