package handlers

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type recorded struct {
	quit, step, pause, reset, slower, faster int
	input                                    []byte
}

func newRecordedHandler() (*KeyHandler, *recorded) {
	rec := &recorded{}
	kh := NewKeyHandler()
	kh.SetCallbacks(
		func() { rec.quit++ },
		func() { rec.step++ },
		func() { rec.pause++ },
		func() { rec.reset++ },
		func() { rec.slower++ },
		func() { rec.faster++ },
		func(b byte) { rec.input = append(rec.input, b) },
	)
	return kh, rec
}

func rune_(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyHandlerCommands(t *testing.T) {
	kh, rec := newRecordedHandler()

	assert.Nil(t, kh.HandleKeyEvent(rune_('q')))
	assert.Nil(t, kh.HandleKeyEvent(rune_('s')))
	assert.Nil(t, kh.HandleKeyEvent(rune_('S')))
	assert.Nil(t, kh.HandleKeyEvent(rune_(' ')))
	assert.Nil(t, kh.HandleKeyEvent(rune_('r')))
	assert.Nil(t, kh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Nil(t, kh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Nil(t, kh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))

	assert.Equal(t, 2, rec.quit)
	assert.Equal(t, 2, rec.step)
	assert.Equal(t, 1, rec.pause)
	assert.Equal(t, 1, rec.reset)
	assert.Equal(t, 1, rec.slower)
	assert.Equal(t, 1, rec.faster)
	assert.Empty(t, rec.input)
}

func TestKeyHandlerQueuesPrintableInput(t *testing.T) {
	kh, rec := newRecordedHandler()

	kh.HandleKeyEvent(rune_('a'))
	kh.HandleKeyEvent(rune_('0'))
	kh.HandleKeyEvent(rune_('!'))
	assert.Equal(t, []byte{'a', '0', '!'}, rec.input)

	// Runes outside the byte range cannot be tape values.
	kh.HandleKeyEvent(rune_('世'))
	assert.Len(t, rec.input, 3)
}

func TestKeyHandlerPassesUnknownKeysThrough(t *testing.T) {
	kh, _ := newRecordedHandler()

	ev := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)
	assert.Equal(t, ev, kh.HandleKeyEvent(ev))
}

func TestKeyHandlerWithoutCallbacks(t *testing.T) {
	kh := NewKeyHandler()

	assert.NotPanics(t, func() {
		kh.HandleKeyEvent(rune_('q'))
		kh.HandleKeyEvent(rune_('x'))
		kh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	})
}
