package handlers

import (
	"github.com/gdamore/tcell/v2"
)

// KeyHandler translates key events into controller commands. The mapping
// follows the classic layout: q quits, s single-steps, space toggles the
// run, r resets, Up and Down walk the frequency ladder, and any other
// printable key is queued as an input byte for the program.
type KeyHandler struct {
	onQuit        func()
	onStep        func()
	onTogglePause func()
	onReset       func()
	onSlower      func()
	onFaster      func()
	onInputByte   func(byte)
}

// NewKeyHandler creates a key handler with no callbacks bound.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// SetCallbacks binds the command callbacks.
func (kh *KeyHandler) SetCallbacks(
	onQuit func(),
	onStep func(),
	onTogglePause func(),
	onReset func(),
	onSlower func(),
	onFaster func(),
	onInputByte func(byte),
) {
	kh.onQuit = onQuit
	kh.onStep = onStep
	kh.onTogglePause = onTogglePause
	kh.onReset = onReset
	kh.onSlower = onSlower
	kh.onFaster = onFaster
	kh.onInputByte = onInputByte
}

// HandleKeyEvent consumes recognized keys and passes everything else
// through to tview.
func (kh *KeyHandler) HandleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		kh.fire(kh.onQuit)
		return nil
	case tcell.KeyUp:
		kh.fire(kh.onSlower)
		return nil
	case tcell.KeyDown:
		kh.fire(kh.onFaster)
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			kh.fire(kh.onQuit)
		case 's', 'S':
			kh.fire(kh.onStep)
		case ' ':
			kh.fire(kh.onTogglePause)
		case 'r', 'R':
			kh.fire(kh.onReset)
		default:
			if r := event.Rune(); kh.onInputByte != nil && r > 0 && r < 256 {
				kh.onInputByte(byte(r))
			}
		}
		return nil
	}
	return event
}

func (kh *KeyHandler) fire(cb func()) {
	if cb != nil {
		cb()
	}
}
