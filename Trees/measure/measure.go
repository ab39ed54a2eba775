package main

import (
	"math"
	"math/rand"
	"testing"
)

var sideEff bool

// benchmark returns a benchmark running step i of w. Building the tree isn't
// timed.
func benchmark(w *Workload, i int) func(b *testing.B) {
	rg := rand.New(rand.NewSource(w.Seed))
	all := rg.Perm(w.Size * 2)[:w.Size]
	rmv := w.Removals(i)
	return func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			tree, _ := newTree(w.Kind)
			tree.AddAll(all...)
			b.StartTimer()
			for _, v := range all[:rmv] {
				tree.Remove(v)
			}
			for _, v := range all {
				sideEff = tree.Contains(v)
			}
			for range rmv {
				sideEff = tree.Contains(rg.Intn(w.Size * 2))
			}
		}
	}
}

// summary of the per op times of the steps in ms.
func summary(cs []float64) (avg, stddev float64) {
	if len(cs) == 0 {
		return
	}
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		a := v - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(cs)))
}
