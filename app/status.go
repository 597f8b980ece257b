package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/constants"
)

// statusKind selects the message color
type statusKind uint8

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

var statusStyles = [...]tcell.Style{
	statusInfo:    tcell.StyleDefault,
	statusSuccess: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	statusError:   tcell.StyleDefault.Foreground(tcell.ColorRed),
}

func (e *Editor) setStatus(msg string, kind statusKind) {
	e.statusMsg = msg
	e.statusKind = kind
	e.statusTimer = e.now().Add(constants.StatusMessageTimeout)
}

// expireStatus clears a message whose timeout has passed
func (e *Editor) expireStatus() {
	if !e.statusTimer.IsZero() && e.now().After(e.statusTimer) {
		e.statusMsg = ""
		e.statusTimer = time.Time{}
	}
}

// drawStatus renders the bottom row: tool, brush swatch, pointer cell, message
func (e *Editor) drawStatus() {
	r := statusArea.Resolve(e.term)
	if r.Empty() {
		return
	}

	pos := "  -,-  "
	if e.pointerOK {
		pos = fmt.Sprintf("%3d,%-3d", e.pointerCol, e.pointerRow)
	}
	head := fmt.Sprintf(" %-9s   %s ", strings.ToUpper(e.panel.Active().String()), pos)

	line := []rune(head)
	line = append(line, []rune(e.statusMsg)...)
	if len(line) > r.W {
		line = line[:r.W]
	}
	for len(line) < r.W {
		line = append(line, ' ')
	}

	headLen := len([]rune(head))
	e.surface.WriteString(r.X, r.Y, string(line[:min(headLen, r.W)]), statusStyles[statusInfo])
	if headLen < r.W {
		e.surface.WriteString(r.X+headLen, r.Y, string(line[headLen:]), statusStyles[e.statusKind])
	}

	// Brush swatch after the tool name
	if swatch := r.X + 11; swatch < r.Right() {
		e.surface.MoveAndWrite(swatch, r.Y, e.panel.Brush())
	}
}
