package appconfig

import (
	"os"
	"regexp"
)

// DefaultDelimiterPattern is spec.md section 6's documented default
// field-delimiter regex.
const DefaultDelimiterPattern = `[\t\n ]+`

// DefaultSourceCommand is the platform fallback when neither the
// configuration nor the environment names a reader command.
const DefaultSourceCommand = "find ."

// SourceCommandEnvVar names the default reader command when the
// configuration does not set one, per spec.md section 6.
const SourceCommandEnvVar = "FSEL_DEFAULT_COMMAND"

// Theme is an opaque handle to a resolved color theme. Theme resolution
// itself is out of spec.md's scope ("color theme resolution" is listed as
// an external collaborator); Config only stores the options. Neither the
// Model nor the Terminal backend reads them.
type Theme map[string]string

// Config is the Model's configuration surface, built from CLI flags
// and/or an rc file (config/config.go's ReadFilename idiom) before the
// Model is constructed.
type Config struct {
	// Delimiter is the field-separator regex used by the Previewer's
	// "{N}" placeholder interpolation. The regex matcher does not use it;
	// it splits query terms on whitespace. An invalid pattern
	// silently reverts to DefaultDelimiterPattern (spec.md section 7).
	Delimiter *regexp.Regexp

	// Reverse flips the vertical layout order (selection/header/status/
	// query rendered bottom-up instead of top-down).
	Reverse bool

	// InlineInfo merges the status bar onto the query row.
	InlineInfo bool

	// PreviewCommand is the command template for the preview pane; an
	// empty string disables the Previewer entirely.
	PreviewCommand string

	// PreviewWindow controls preview pane placement, size, wrap, and
	// initial visibility.
	PreviewWindow PreviewWindow

	// Theme holds the theme options, unresolved. It is not passed to the
	// Terminal backend; the Model draws with its built-in styles.
	Theme Theme

	// HeaderLines are forwarded verbatim to the Header component.
	HeaderLines []string

	// SourceCommand is the reader command template; if empty,
	// ResolveSourceCommand returns the environment's command or the
	// platform fallback instead (the field itself is left empty).
	SourceCommand string

	// Shell is used to invoke both SourceCommand and PreviewCommand,
	// mirroring peco's --exec convention of always going through a
	// shell so pipes and globs in the command string work.
	Shell string

	// MultiSelect enables multi-select (Tab toggles, accept returns
	// every chosen item).
	MultiSelect bool

	// EnableNullSep and EnableANSI are carried from peco's --null and
	// default-on ANSI passthrough handling (see SPEC_FULL.md section 3).
	EnableNullSep bool
	EnableANSI    bool
}

// New returns a Config with every field at its documented default.
func New() *Config {
	return &Config{
		Delimiter:     regexp.MustCompile(DefaultDelimiterPattern),
		PreviewWindow: DefaultPreviewWindow(),
		Shell:         defaultShell(),
		EnableANSI:    true,
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// SetDelimiter compiles pattern and installs it, falling back to
// DefaultDelimiterPattern on a compile error -- spec.md section 7's
// documented silent-revert behavior for a bad delimiter regex.
func (c *Config) SetDelimiter(pattern string) {
	if pattern == "" {
		c.Delimiter = regexp.MustCompile(DefaultDelimiterPattern)
		return
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		c.Delimiter = regexp.MustCompile(DefaultDelimiterPattern)
		return
	}
	c.Delimiter = re
}

// ResolveSourceCommand returns c.SourceCommand if set, else the
// FSEL_DEFAULT_COMMAND environment variable if non-empty, else the
// platform fallback "find .". Grounded on original_source/src/model.rs's
// SKIM_DEFAULT_COMMAND resolution, renamed to this module's env var.
func (c *Config) ResolveSourceCommand() string {
	if c.SourceCommand != "" {
		return c.SourceCommand
	}
	if v := os.Getenv(SourceCommandEnvVar); v != "" {
		return v
	}
	return DefaultSourceCommand
}
