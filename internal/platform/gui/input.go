package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// binding ties an action to its keys. Held actions read the key state every
// tick; the others fire on the tick a key goes down.
type binding struct {
	action core.Action
	held   bool
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionRotateLeft, true, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRotateRight, true, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionThrust, true, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionFire, true, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionShield, true, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionPause, false, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, false, []ebiten.Key{ebiten.KeyN}},
	{core.ActionVolumeUp, false, []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
	{core.ActionVolumeDown, false, []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
	{core.ActionQuit, false, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// keyState answers whether a key is down or was just pressed.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// readFrame fills frame from the keyboard.
func readFrame(ks keyState, frame *core.InputFrame) {
	frame.Clear()
	for _, b := range bindings {
		for _, k := range b.keys {
			if (b.held && ks.Pressed(k)) || (!b.held && ks.JustPressed(k)) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// nameBuffer collects typed characters for the best-score prompt.
type nameBuffer struct {
	runes []rune
	limit int
}

// add appends printable characters up to the limit.
func (n *nameBuffer) add(chars []rune) {
	for _, r := range chars {
		if len(n.runes) >= n.limit {
			return
		}
		if r >= ' ' && r != 0x7f {
			n.runes = append(n.runes, r)
		}
	}
}

// backspace removes the last character.
func (n *nameBuffer) backspace() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

func (n *nameBuffer) reset() { n.runes = n.runes[:0] }

func (n *nameBuffer) String() string { return string(n.runes) }
