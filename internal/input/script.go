package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"robot-renderer/internal/eventloop"
)

// ActionKind distinguishes script steps.
type ActionKind int

const (
	ActionKey ActionKind = iota
	ActionSpecial
	ActionWait
)

// Action is one step of a key script.
type Action struct {
	Kind    ActionKind
	Rune    rune
	Special SpecialKey
	Wait    time.Duration
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSpecial:
		return a.Special.String()
	case ActionWait:
		return "wait=" + a.Wait.String()
	}
	return string(a.Rune)
}

// maxRepeat bounds the "*N" suffix.
const maxRepeat = 100000

// ParseScript parses a whitespace separated key script, e.g.
//
//	k right*5 c wait=50ms C
//
// A single character is that key, "left" and "right" are the arrow keys,
// "space" is ' ' and "wait=D" lets D of loop time pass. Any key token may
// carry a "*N" repeat count.
func ParseScript(s string) ([]Action, error) {
	var actions []Action
	for _, tok := range strings.Fields(s) {
		if d, ok := strings.CutPrefix(tok, "wait="); ok {
			wait, err := time.ParseDuration(d)
			if err != nil || wait < 0 {
				return nil, fmt.Errorf("input: bad wait %q", tok)
			}
			actions = append(actions, Action{Kind: ActionWait, Wait: wait})
			continue
		}

		name, count := tok, 1
		if i := strings.LastIndexByte(tok, '*'); i > 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 || n > maxRepeat {
				return nil, fmt.Errorf("input: bad repeat in %q", tok)
			}
			name, count = tok[:i], n
		}

		a, err := parseKey(name)
		if err != nil {
			return nil, err
		}
		for ; count > 0; count-- {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

func parseKey(name string) (Action, error) {
	switch name {
	case "left":
		return Action{Kind: ActionSpecial, Special: KeyLeft}, nil
	case "right":
		return Action{Kind: ActionSpecial, Special: KeyRight}, nil
	case "space":
		return Action{Kind: ActionKey, Rune: ' '}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Action{Kind: ActionKey, Rune: r}, nil
	}
	return Action{}, fmt.Errorf("input: unknown key %q", name)
}

// Replay applies actions in order. Waits advance the loop clock, running
// any timer callbacks that fall due.
func Replay(actions []Action, c *Controller, loop *eventloop.Loop) {
	for _, a := range actions {
		switch a.Kind {
		case ActionKey:
			c.Key(a.Rune)
		case ActionSpecial:
			c.Special(a.Special)
		case ActionWait:
			loop.Advance(loop.Now().Add(a.Wait))
		}
	}
}
