package datafile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/jhewit/bintree"
)

// Terminator is the word completing a tree in a data file.
const Terminator = "$$"

// Event is broadcast by a Loader for every word read.
type Event struct {
	Tree     int    // index of the tree the word belongs to
	Item     string // the word
	Inserted bool   // false if the word has been rejected as a duplicate
}

func (e Event) String() string {
	if e.Inserted {
		return fmt.Sprintf("tree %d: inserted %q", e.Tree, e.Item)
	}
	return fmt.Sprintf("tree %d: rejected duplicate %q", e.Tree, e.Item)
}

// Loader reads data files into trees.
type Loader struct {
	cast *caster.Caster // broadcaster for load events
}

// NewLoader creates a loader. Cancelling ctx closes the loader's broadcaster.
func NewLoader(ctx context.Context) *Loader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Loader{
		cast: caster.New(ctx), // we will broadcast messages when words are loaded
	}
}

// Subscribe returns a channel receiving an Event for every word subsequently
// loaded. Subscribers have to drain their channel, as loading blocks while a
// subscriber's buffer of size capacity is full. The subscription ends when ctx
// is cancelled or the loader is closed.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Close closes the loader and all subscriptions.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads all trees from r. Words following the last terminator form a
// final tree, if there are any.
func (l *Loader) Load(r io.Reader) ([]*bintree.Tree[string], error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var trees []*bintree.Tree[string]
	var current *bintree.Tree[string]
	for scanner.Scan() {
		word := scanner.Text()
		if word == Terminator {
			if current == nil {
				current = bintree.NewOrdered[string]()
			}
			trees = append(trees, current)
			tracer().Debugf("datafile: completed tree %d with %d items", len(trees)-1, current.Len())
			current = nil
			continue
		}
		if current == nil {
			current = bintree.NewOrdered[string]()
		}
		ok := current.Insert(word)
		l.cast.Pub(Event{Tree: len(trees), Item: word, Inserted: ok})
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("datafile: %v", err)
		return trees, fmt.Errorf("error loading data: %w", err)
	}
	if current != nil {
		trees = append(trees, current)
	}
	return trees, nil
}

// LoadFile opens a file, which must be a regular file, and loads all trees
// from it.
func (l *Loader) LoadFile(name string) ([]*bintree.Tree[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Infof("datafile: loading %s (%d bytes)", name, fi.Size())
	return l.Load(file)
}
