package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keysByName indexes tcell key names in lower case ("up", "enter", "ctrl-s", "f2")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	return m
}()

// LoadKeyConfig builds a sparse override table from name → action maps
// runes binds printable characters, keys binds named special keys
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(runes, keys map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(runes) > 0 {
		kt.Runes = make(map[rune]Intent, len(runes))
		for keyStr, action := range runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, errors.Wrapf(err, "[runes] key %q", keyStr)
			}
			in, err := resolveAction(action)
			if err != nil {
				return nil, errors.Wrapf(err, "[runes] key %q", keyStr)
			}
			kt.Runes[r] = in
		}
	}

	if len(keys) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]Intent, len(keys))
		for keyStr, action := range keys {
			k, ok := keysByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, errors.Errorf("[keys] unknown key name: %q", keyStr)
			}
			in, err := resolveAction(action)
			if err != nil {
				return nil, errors.Wrapf(err, "[keys] key %q", keyStr)
			}
			kt.SpecialKeys[k] = in
		}
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, errors.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := actionRegistry[name]
	if !ok {
		return Intent{}, errors.Errorf("unknown action: %q", name)
	}
	return in, nil
}
