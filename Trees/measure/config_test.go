package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"gopkg.in/yaml.v3"
)

func writeWorkload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWorkload(t *testing.T) {
	w, err := LoadWorkload("")
	if err != nil || *w != defaultWorkload {
		t.Fatalf("got %+v %v", w, err)
	}
	w, err = LoadWorkload(writeWorkload(t, "kind: bst\nsize: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := defaultWorkload
	want.Kind, want.Size = "bst", 10
	if *w != want {
		t.Fatalf("got %+v, want %+v", *w, want)
	}
	if w.Removals(w.Steps) != 5 || w.Removals(0) != 0 {
		t.Fatalf("removals %d %d", w.Removals(w.Steps), w.Removals(0))
	}
}

func TestLoadWorkload_Invalid(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"kind", "kind: rbtree\n"},
		{"size", "size: 0\n"},
		{"steps", "steps: -1\n"},
		{"ratio", "remove_ratio: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWorkload(writeWorkload(t, tt.content))
			var bad *Trees.ArgumentError
			if !errors.As(err, &bad) || bad.Name != strings.Replace(tt.name, "ratio", "remove_ratio", 1) {
				t.Fatalf("got %v", err)
			}
		})
	}
	if _, err := LoadWorkload(writeWorkload(t, "size: [1\n")); err == nil {
		t.Fatal("broken yaml should fail")
	}
	if _, err := LoadWorkload(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestWorkload_Marshal(t *testing.T) {
	data, err := defaultWorkload.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	var w Workload
	if err = yaml.Unmarshal(data, &w); err != nil || w != defaultWorkload {
		t.Fatalf("got %+v %v", w, err)
	}
	if !bytes.Contains(data, []byte("remove_ratio: 0.5")) {
		t.Fatalf("got %s", data)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, "avl", []string{"1", "2", "3", "2"}); err != nil {
		t.Fatal(err)
	}
	want := "2 :D0H1B0\n  1 :D1H0B0\n  3 :D1H0B0\nin-order: [1 2 3]\nheight: 1\nbalanced: true\n"
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
	if err := dump(&buf, "bst", []string{"x"}); err == nil {
		t.Fatal("x isn't an integer")
	}
	if err := dump(&buf, "splay", []string{"1"}); !errors.Is(err, Trees.ErrInvalidArgument) {
		t.Fatalf("got %v", err)
	}
}

func TestSummary(t *testing.T) {
	avg, stddev := summary([]float64{1, 3})
	if avg != 2 || stddev != 1 {
		t.Fatalf("got %f %f", avg, stddev)
	}
	if avg, stddev = summary(nil); avg != 0 || stddev != 0 {
		t.Fatal("empty summary")
	}
}
