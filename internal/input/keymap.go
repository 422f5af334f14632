// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (arrows, paging, Esc) to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps printable keys to actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with the default viewer bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionScrollUp
	p.keymap[tcell.KeyDown] = ActionScrollDown
	p.keymap[tcell.KeyLeft] = ActionScrollLeft
	p.keymap[tcell.KeyRight] = ActionScrollRight
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown
	p.keymap[tcell.KeyHome] = ActionTop
	p.keymap[tcell.KeyEnd] = ActionBottom
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	// vi-style
	p.runeKeymap['k'] = ActionScrollUp
	p.runeKeymap['j'] = ActionScrollDown
	p.runeKeymap['h'] = ActionScrollLeft
	p.runeKeymap['l'] = ActionScrollRight
	p.runeKeymap['g'] = ActionTop
	p.runeKeymap['G'] = ActionBottom

	p.runeKeymap['y'] = ActionCopy
	p.runeKeymap['c'] = ActionCopy
	p.runeKeymap['q'] = ActionQuit
}

// Bind overrides or adds a rune binding.
func (p *InputProcessor) Bind(r rune, action Action) {
	p.runeKeymap[r] = action
}

// ProcessEvent returns the action bound to ev, or ActionUnknown.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()

	if key == tcell.KeyRune {
		mod := ev.Modifiers()
		if mod != tcell.ModNone && mod != tcell.ModShift {
			return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
		}
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return ActionEvent{Action: action, Rune: ev.Rune()}
		}
		return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}
