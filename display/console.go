package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/jhewit/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Console outputs trees to a console with a fixed width font.
type Console struct {
	colors []*color.Color // palette, indexed by depth modulo its length
}

// NewConsole creates a console formatter. colors is a palette of colors cycled
// through by tree depth; if it is empty, a default palette is used.
func NewConsole(colors []*color.Color) *Console {
	if len(colors) == 0 {
		colors = makeDefaultPalette()
	}
	return &Console{colors: colors}
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

var setupGraphemes sync.Once

// Width returns the display width of s in en.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// fit shortens label to at most width en, marking a cut with an ellipsis.
func fit(label string, width int, context *uax11.Context) string {
	if Width(label, context) <= width {
		return label
	}
	if width <= 0 {
		return ""
	}
	runes := []rune(label)
	for len(runes) > 0 && Width(string(runes)+"…", context) > width {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return "…"
	}
	return string(runes) + "…"
}

// Item outputs a single line for an item label at a given depth.
func (c *Console) Item(label string, depth int, w io.Writer, config *Config) error {
	indent := (depth + 1) * config.Indent
	if config.LineWidth > 0 {
		label = fit(label, config.LineWidth-indent, config.Context)
	}
	if _, err := io.WriteString(w, strings.Repeat(" ", indent)); err != nil {
		return err
	}
	var err error
	if config.Colored {
		_, err = c.colors[depth%len(c.colors)].Fprint(w, label)
	} else {
		_, err = io.WriteString(w, label)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Sideways outputs a tree rotated by 90 degrees, one item per line, with the
// right subtree above its root above the left subtree.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Sideways[T any](t *bintree.Tree[T], w io.Writer, config *Config, console *Console) error {
	if t == nil || w == nil || config == nil || console == nil {
		return errors.New("illegal argument: nil")
	}
	config = config.normalized()
	tracer().Debugf("display: sideways output of %d items", t.Len())
	var err error
	t.Walk(bintree.ReverseOrder, func(item T, depth int) bool {
		err = console.Item(fmt.Sprint(item), depth, w, config)
		return err == nil
	})
	if err != nil {
		tracer().Errorf("display: %v", err)
	}
	return err
}

// Print outputs a tree sideways to stdout.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Print[T any](t *bintree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Sideways(t, os.Stdout, config, NewConsole(nil))
}
