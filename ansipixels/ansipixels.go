// Package ansipixels is the small raw terminal layer the game draws with:
// raw mode, cursor positioning, centered and boxed text, key reading that
// also handles resize and termination signals, and a line editor for prompts.
package ansipixels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/term"
)

// ErrInterrupted is returned by reads when a termination signal or ^C is received.
var ErrInterrupted = errors.New("interrupted")

// CtrlC is the byte a ^C produces in raw mode.
const CtrlC = 3

type AnsiPixels struct {
	fd    int
	fdOut int
	Out   *bufio.Writer
	In    io.Reader
	state *term.State
	input chan []byte
	// pending is input not yet consumed by Read.
	pending []byte
	Data    []byte // last input read by ReadOrResizeOrSignal
	W, H    int    // Width and Height
	C       chan os.Signal
	// OnResize is called, after W and H are updated, when the terminal is resized.
	OnResize func() error
}

// NewAnsiPixels sets up stdin/stdout, Open() must be called before use.
func NewAnsiPixels() *AnsiPixels {
	ap := New(os.Stdin, os.Stdout)
	ap.fd = safecast.MustConvert[int](os.Stdin.Fd())
	ap.fdOut = safecast.MustConvert[int](os.Stdout.Fd())
	return ap
}

// New returns an AnsiPixels on arbitrary streams; without a terminal
// only the drawing and reading parts are usable (no raw mode or size).
func New(in io.Reader, out io.Writer) *AnsiPixels {
	return &AnsiPixels{
		fd:    -1,
		fdOut: -1,
		Out:   bufio.NewWriter(out),
		In:    in,
		C:     make(chan os.Signal, 1),
		W:     80,
		H:     24,
	}
}

// Open switches the terminal to raw mode, reads its size and starts
// watching input and signals.
func (ap *AnsiPixels) Open() (err error) {
	ap.state, err = term.MakeRaw(ap.fd)
	if err != nil {
		return err
	}
	ap.SignalChannel()
	ap.StartInput()
	return ap.GetSize()
}

func (ap *AnsiPixels) GetSize() (err error) {
	ap.W, ap.H, err = term.GetSize(ap.fdOut)
	return
}

func (ap *AnsiPixels) Restore() {
	ap.ShowCursor()
	ap.Out.Flush()
	if ap.state == nil {
		return
	}
	signal.Stop(ap.C)
	err := term.Restore(ap.fd, ap.state)
	if err != nil {
		log.Errf("Error restoring terminal: %v", err)
	}
	ap.state = nil
}

func (ap *AnsiPixels) SignalChannel() {
	signal.Notify(ap.C, signalList...)
}

// StartInput starts the goroutine reading In. It must be called once,
// Open does it.
func (ap *AnsiPixels) StartInput() {
	ap.input = make(chan []byte)
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := ap.In.Read(buf)
			if n > 0 {
				ap.input <- buf[:n]
			}
			if err != nil {
				log.LogVf("Exiting input loop: %v", err)
				close(ap.input)
				return
			}
		}
	}()
}

// ReadOrResizeOrSignal flushes the output then waits for either input, left in
// Data, or a signal. A resize updates W and H and calls OnResize and returns
// with an empty Data. Termination signals return ErrInterrupted.
func (ap *AnsiPixels) ReadOrResizeOrSignal() error {
	if len(ap.pending) > 0 {
		ap.Data, ap.pending = ap.pending, nil
		return nil
	}
	ap.Data = nil
	if err := ap.Out.Flush(); err != nil {
		return err
	}
	select {
	case s := <-ap.C:
		if !ap.IsResizeSignal(s) {
			log.LogVf("Received signal %v", s)
			return fmt.Errorf("%w: %v", ErrInterrupted, s)
		}
		if err := ap.GetSize(); err != nil {
			log.Warnf("Can't get the new terminal size: %v", err)
		}
		if ap.OnResize != nil {
			if err := ap.OnResize(); err != nil {
				return err
			}
		}
		return ap.Out.Flush()
	case data, ok := <-ap.input:
		if !ok {
			return io.EOF
		}
		ap.Data = data
		return nil
	}
}

// Read makes AnsiPixels an io.Reader sharing the input with the key reads,
// for term.Terminal. It stops after an end of line so what follows is left
// for the next reader. ^C returns ErrInterrupted.
func (ap *AnsiPixels) Read(p []byte) (int, error) {
	for len(ap.pending) == 0 {
		if err := ap.ReadOrResizeOrSignal(); err != nil {
			return 0, err
		}
		ap.pending = ap.Data
	}
	n := len(ap.pending)
	if i := bytes.IndexAny(ap.pending, "\r\n"); i >= 0 {
		n = i + 1
	}
	if bytes.IndexByte(ap.pending[:n], CtrlC) >= 0 {
		ap.pending = nil
		return 0, fmt.Errorf("%w: ^C", ErrInterrupted)
	}
	n = copy(p, ap.pending[:n])
	ap.pending = ap.pending[n:]
	return n, nil
}

// Write goes to the buffered output, for term.Terminal.
func (ap *AnsiPixels) Write(p []byte) (int, error) {
	return ap.Out.Write(p)
}

// ReadLine shows prompt at the cursor and returns the line typed by the
// user, with the usual editing keys.
func (ap *AnsiPixels) ReadLine(prompt string) (string, error) {
	t := term.NewTerminal(ap, prompt)
	if err := t.SetSize(ap.W, ap.H); err != nil {
		log.Warnf("Can't set the line editor size: %v", err)
	}
	ap.ShowCursor()
	defer ap.HideCursor()
	return t.ReadLine()
}

func (ap *AnsiPixels) ClearScreen() {
	_, err := ap.Out.WriteString("\033[2J")
	if err != nil {
		log.Errf("Error clearing screen: %v", err)
	}
}

func (ap *AnsiPixels) MoveCursor(x, y int) {
	_, err := ap.Out.WriteString("\033[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
	if err != nil {
		log.Errf("Error moving cursor: %v", err)
	}
}

func (ap *AnsiPixels) WriteString(s string) {
	_, _ = ap.Out.WriteString(s)
}

func (ap *AnsiPixels) WriteAtStr(x, y int, msg string) {
	ap.MoveCursor(x, y)
	_, _ = ap.Out.WriteString(msg)
}

func (ap *AnsiPixels) WriteAt(x, y int, msg string, args ...any) {
	ap.MoveCursor(x, y)
	_, _ = fmt.Fprintf(ap.Out, msg, args...)
}

// WriteCentered writes the message centered on line y, accounting
// for the on screen width of the text.
func (ap *AnsiPixels) WriteCentered(y int, msg string, args ...any) int {
	s := fmt.Sprintf(msg, args...)
	x := (ap.W - ScreenWidth(s)) / 2
	ap.WriteAtStr(x, y, s)
	return x
}

// WriteRight writes the message aligned to the right edge of line y.
func (ap *AnsiPixels) WriteRight(y int, msg string, args ...any) int {
	s := fmt.Sprintf(msg, args...)
	x := ap.W - ScreenWidth(s)
	ap.WriteAtStr(x, y, s)
	return x
}

// WriteBoxed writes the (possibly multi line) message centered on line y
// inside a rounded box.
func (ap *AnsiPixels) WriteBoxed(y int, msg string, args ...any) {
	lines := strings.Split(fmt.Sprintf(msg, args...), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ScreenWidth(l))
	}
	x := (ap.W - width) / 2
	for i, l := range lines {
		ap.WriteAtStr(x, y+i, l+strings.Repeat(" ", width-ScreenWidth(l)))
	}
	ap.DrawRoundBox(x-1, y-1, width+2, len(lines)+2)
}

// DrawRoundBox draws the outline of a w by h box with its top left corner at x, y.
func (ap *AnsiPixels) DrawRoundBox(x, y, w, h int) {
	ap.drawBox(x, y, w, h, RoundTopLeft, RoundTopRight, RoundBottomLeft, RoundBottomRight)
}

// DrawSquareBox is DrawRoundBox with square corners.
func (ap *AnsiPixels) DrawSquareBox(x, y, w, h int) {
	ap.drawBox(x, y, w, h, SquareTopLeft, SquareTopRight, SquareBottomLeft, SquareBottomRight)
}

func (ap *AnsiPixels) drawBox(x, y, w, h int, topLeft, topRight, bottomLeft, bottomRight string) {
	inner := strings.Repeat(Horizontal, max(0, w-2))
	ap.WriteAtStr(x, y, topLeft+inner+topRight)
	for j := 1; j < h-1; j++ {
		ap.WriteAtStr(x, y+j, Vertical)
		ap.WriteAtStr(x+w-1, y+j, Vertical)
	}
	ap.WriteAtStr(x, y+h-1, bottomLeft+inner+bottomRight)
}

func (ap *AnsiPixels) ClearEndOfLine() {
	_, _ = ap.Out.WriteString("\033[K")
}

func (ap *AnsiPixels) HideCursor() {
	_, _ = ap.Out.WriteString("\033[?25l")
}

func (ap *AnsiPixels) ShowCursor() {
	_, _ = ap.Out.WriteString("\033[?25h")
}

// StartSyncMode starts a synchronized update, the terminal shows nothing
// until EndSyncMode.
func (ap *AnsiPixels) StartSyncMode() {
	_, _ = ap.Out.WriteString("\033[?2026h")
}

// EndSyncMode ends the synchronized update and flushes.
func (ap *AnsiPixels) EndSyncMode() {
	_, _ = ap.Out.WriteString("\033[?2026l")
	_ = ap.Out.Flush()
}
