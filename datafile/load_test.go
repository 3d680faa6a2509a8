package datafile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const data = `iii not tttt eee r not and jj r eee pp r sssss eee not tttt ooo ff m m y z $$
b a c b a c $$
c b a $$
`

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	loader := NewLoader(nil)
	defer loader.Close()
	trees, err := loader.Load(strings.NewReader(data))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(trees) != 3 {
		t.Fatalf("expected 3 trees, got %d", len(trees))
	}
	if got := trees[0].String(); got != "and eee ff iii jj m not ooo pp r sssss tttt y z" {
		t.Errorf("unexpected first tree %q", got)
	}
	if trees[1].String() != "a b c" || trees[1].Height("b") != 2 {
		t.Errorf("unexpected second tree %q", trees[1].String())
	}
	// c b a is degenerate
	if trees[2].Depth() != 3 {
		t.Errorf("expected degenerate third tree, depth is %d", trees[2].Depth())
	}
}

func TestLoadTrailingTreeAndEmptyTrees(t *testing.T) {
	loader := NewLoader(context.Background())
	defer loader.Close()
	trees, err := loader.Load(strings.NewReader("$$ x y"))
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(trees) != 2 || !trees[0].IsEmpty() || trees[1].String() != "x y" {
		t.Errorf("unexpected trees %v", trees)
	}
	trees, err = loader.Load(strings.NewReader("  \n"))
	if err != nil || len(trees) != 0 {
		t.Errorf("expected no trees for blank input, got %d (%v)", len(trees), err)
	}
}

func TestLoadBroadcastsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader := NewLoader(ctx)
	defer loader.Close()
	sub, ok := loader.Subscribe(ctx, 16)
	if !ok {
		t.Fatalf("cannot subscribe to loader")
	}
	if _, err := loader.Load(strings.NewReader("b a b $$ c")); err != nil {
		t.Fatal(err.Error())
	}
	want := []Event{
		{Tree: 0, Item: "b", Inserted: true},
		{Tree: 0, Item: "a", Inserted: true},
		{Tree: 0, Item: "b", Inserted: false},
		{Tree: 1, Item: "c", Inserted: true},
	}
	for i, w := range want {
		select {
		case msg := <-sub:
			ev, ok := msg.(Event)
			if !ok || ev != w {
				t.Errorf("event %d: expected %v, got %v", i, w, msg)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}

func TestLoadFile(t *testing.T) {
	loader := NewLoader(nil)
	defer loader.Close()
	dir := t.TempDir()
	name := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err.Error())
	}
	trees, err := loader.LoadFile(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(trees) != 3 {
		t.Errorf("expected 3 trees, got %d", len(trees))
	}
	if _, err := loader.LoadFile(dir); err == nil {
		t.Errorf("expected error loading a directory")
	}
	if _, err := loader.LoadFile(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("expected error loading a missing file")
	}
}
