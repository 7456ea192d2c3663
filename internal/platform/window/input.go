package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// steering lists the keys that hold each steering action.
var steering = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// commands lists the keys that fire one-shot actions on press.
var commands = map[core.Action][]ebiten.Key{
	core.ActionRestart: {ebiten.KeyR},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// keyState answers whether a key is down or was pressed this tick.
// ebiten and inpututil provide the real implementations.
type keyState func(ebiten.Key) bool

func anyKey(keys []ebiten.Key, f keyState) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// inputTracker turns polled key levels into press and release edges.
// A steering action stays held while any of its keys is down, so switching
// from the arrow key to the letter key mid-hold emits no edges.
type inputTracker struct {
	held map[core.Action]bool
}

func newInputTracker() *inputTracker {
	return &inputTracker{held: make(map[core.Action]bool)}
}

// poll fills frame with the edges since the previous poll.
func (t *inputTracker) poll(down, justPressed keyState, frame *core.InputFrame) {
	for a, keys := range steering {
		now := anyKey(keys, down)
		switch {
		case now && !t.held[a]:
			frame.Set(a)
		case !now && t.held[a]:
			frame.Release(a)
		}
		t.held[a] = now
	}

	for a, keys := range commands {
		if anyKey(keys, justPressed) {
			frame.Set(a)
		}
	}
}

// releaseAll emits release edges for every held action, e.g. on focus loss.
func (t *inputTracker) releaseAll(frame *core.InputFrame) {
	for a, held := range t.held {
		if held {
			frame.Release(a)
			t.held[a] = false
		}
	}
}
