package display

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for tree display.
type Config struct {
	LineWidth int            // maximum width of an output line in en; 0 means unlimited
	Indent    int            // number of en per tree level
	Colored   bool           // color items by depth
	Context   *uax11.Context // context for measuring item widths
}

// DefaultIndent is the indentation per tree level used if Config.Indent is 0.
const DefaultIndent = 4

func (config *Config) normalized() *Config {
	c := *config
	if c.Indent <= 0 {
		c.Indent = DefaultIndent
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a display Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Indent:  DefaultIndent,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 1
		}
	}
	tracer().P("display", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
