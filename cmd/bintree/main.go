// Command bintree loads binary search trees from a data file and shows what
// happens to them: in-order listing, sideways display, heights, deep copy and
// equality, and the flatten/rebuild cycle producing a balanced tree.
//
// Usage:
//
//	bintree [-trace level] [-color] [-dot file] [-html file] datafile
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhewit/bintree"
	"github.com/jhewit/bintree/datafile"
	"github.com/jhewit/bintree/display"
	"github.com/jhewit/bintree/html"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	traceLevel := flag.String("trace", "error", "trace level [debug|info|error]")
	colored := flag.Bool("color", false, "force colored sideways display")
	dotFile := flag.String("dot", "", "write Graphviz DOT of the first tree to file")
	htmlFile := flag.String("html", "", "write HTML lists of all trees to file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bintree [flags] datafile")
		flag.PrintDefaults()
		os.Exit(2)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(levelFromString(*traceLevel))
	if err := run(flag.Arg(0), *colored, *dotFile, *htmlFile); err != nil {
		fmt.Fprintf(os.Stderr, "bintree: %v\n", err)
		os.Exit(1)
	}
}

func levelFromString(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func run(name string, colored bool, dotFile, htmlFile string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader := datafile.NewLoader(ctx)
	events, ok := loader.Subscribe(ctx, 64)
	if !ok {
		return fmt.Errorf("cannot subscribe to loader events")
	}
	rejected := logRejections(events)
	trees, err := loader.LoadFile(name)
	loader.Close() // closes events
	if n := <-rejected; n > 0 {
		gtrace.CoreTracer.Infof("%d duplicate words rejected", n)
	}
	if err != nil {
		return err
	}
	config := display.ConfigFromTerminal()
	if colored {
		config.Colored = true
	}
	for i, tree := range trees {
		fmt.Printf("--- tree %d ---\n", i)
		if err := report(tree, os.Stdout, config); err != nil {
			return err
		}
	}
	if dotFile != "" && len(trees) > 0 {
		if err := writeFile(dotFile, func(w io.Writer) error {
			return bintree.Tree2Dot(trees[0], w)
		}); err != nil {
			return err
		}
	}
	if htmlFile != "" {
		if err := writeFile(htmlFile, func(w io.Writer) error {
			for _, tree := range trees {
				if err := html.Render(tree, w); err != nil {
					return err
				}
				io.WriteString(w, "\n")
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func report(tree *bintree.Tree[string], w io.Writer, config *display.Config) error {
	console := display.NewConsole(nil)
	fmt.Fprint(w, "in-order: ")
	if _, err := tree.WriteTo(w); err != nil {
		return err
	}
	if err := display.Sideways(tree, w, config, console); err != nil {
		return err
	}
	fmt.Fprintf(w, "items: %d, height: %d\n", tree.Len(), tree.Depth())
	tree.ForEachItem(func(item string) bool {
		fmt.Fprintf(w, "  height(%s) = %d\n", item, tree.Height(item))
		return true
	})
	cp := tree.Copy()
	fmt.Fprintf(w, "copy equals original: %v\n", cp.Equal(tree))
	items := cp.Flatten()
	fmt.Fprintf(w, "flattened: %v, copy empty: %v\n", items, cp.IsEmpty())
	if err := cp.BuildBalanced(items); err != nil {
		return err
	}
	fmt.Fprintf(w, "balanced, height %d, equals original: %v\n", cp.Depth(), cp.Equal(tree))
	return display.Sideways(cp, w, config, console)
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// logRejections traces every rejected word received from events. The number of
// rejections is delivered on the returned channel after events has been closed.
func logRejections(events <-chan interface{}) <-chan int {
	count := make(chan int, 1)
	go func() {
		n := 0
		for msg := range events {
			if ev, ok := msg.(datafile.Event); ok && !ev.Inserted {
				gtrace.CoreTracer.Infof("%v", ev)
				n++
			}
		}
		count <- n
	}()
	return count
}
