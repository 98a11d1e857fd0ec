// Package previewer implements the Model's Previewer component: on item
// change, it interpolates the focused item into a command template and
// renders the command's stdout into a side pane. Grounded on peco's
// query_exec.go (a mutex-guarded time.Timer used to debounce rapid
// updates) driving filter/external.go's subprocess-spawn idiom
// (os/exec, kill-on-supersede).
package previewer

import (
	"bytes"
	"os/exec"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/mattn-fsel/fsel/internal/item"
)

// DefaultDebounce mirrors peco's QueryExecState default delay, applied
// here to preview respawns instead of reader query execution.
const DefaultDebounce = 50 * time.Millisecond

// Previewer owns the preview subprocess's lifecycle: it debounces rapid
// cursor movement, interpolates the focused item into its command
// template, and keeps the most recent command's output in its canvas.
type Previewer struct {
	shell     string
	template  string
	delimiter *regexp.Regexp
	debounce  time.Duration

	mutex   sync.Mutex
	timer   *time.Timer
	cmd     *exec.Cmd
	canvas  string
	canvasG int // generation counter to discard stale async output
}

// New creates a Previewer. template is the command string, interpolated
// with "{}" (whole display line) and "{N}" (1-based field split on
// delimiter) placeholders, matching original_source's RE_FIELDS handling.
func New(shell, template string, delimiter *regexp.Regexp) *Previewer {
	return &Previewer{
		shell:     shell,
		template:  template,
		delimiter: delimiter,
		debounce:  DefaultDebounce,
	}
}

// OnItemChange schedules a preview refresh for it, debounced by
// DefaultDebounce so fast cursor movement doesn't spawn a subprocess per
// keystroke.
func (p *Previewer) OnItemChange(it *item.Item) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		p.respawn(it)
	})
}

func (p *Previewer) interpolate(it *item.Item) string {
	fields := p.delimiter.Split(it.DisplayString(), -1)

	re := regexp.MustCompile(`\{-?[0-9]*\}`)
	return re.ReplaceAllStringFunc(p.template, func(tok string) string {
		inner := tok[1 : len(tok)-1]
		if inner == "" {
			return it.DisplayString()
		}
		n, err := strconv.Atoi(inner)
		if err != nil {
			return tok
		}
		if n < 0 {
			n = len(fields) + n + 1
		}
		if n <= 0 || n > len(fields) {
			return ""
		}
		return fields[n-1]
	})
}

func (p *Previewer) respawn(it *item.Item) {
	p.mutex.Lock()
	if prev := p.cmd; prev != nil && prev.Process != nil {
		_ = prev.Process.Kill()
	}
	p.canvasG++
	gen := p.canvasG
	p.mutex.Unlock()

	commandLine := p.interpolate(it)
	cmd := exec.Command(p.shell, "-c", commandLine)

	p.mutex.Lock()
	p.cmd = cmd
	p.mutex.Unlock()

	out, _ := cmd.Output()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	if gen != p.canvasG {
		// A newer item change superseded this run while it was in
		// flight; discard the stale output.
		return
	}
	p.canvas = string(bytes.TrimRight(out, "\n"))
}

// Canvas returns the most recently rendered preview output, for frame
// composition to draw into the preview pane.
func (p *Previewer) Canvas() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.canvas
}

// Close stops any pending debounce timer and kills an in-flight preview
// subprocess, called when the Model tears down.
func (p *Previewer) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}
