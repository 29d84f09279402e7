package input

import (
	"fmt"
	"strings"
)

// UnknownKeyError reports a key token outside the mapping table.
type UnknownKeyError struct {
	Token string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: %s", e.Token)
}

// UnknownModifierError reports an unrecognized modifier token.
type UnknownModifierError struct {
	Token string
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier: %s", e.Token)
}

// namedKeys maps uppercase key names to backend key identifiers.
var namedKeys = map[string]string{
	"ENTER":      "enter",
	"RETURN":     "enter",
	"TAB":        "tab",
	"SPACE":      "space",
	"BACKSPACE":  "backspace",
	"DELETE":     "delete",
	"ESCAPE":     "esc",
	"ESC":        "esc",
	"UP":         "up",
	"ARROWUP":    "up",
	"DOWN":       "down",
	"ARROWDOWN":  "down",
	"LEFT":       "left",
	"ARROWLEFT":  "left",
	"RIGHT":      "right",
	"ARROWRIGHT": "right",
	"HOME":       "home",
	"END":        "end",
	"PAGEUP":     "pageup",
	"PAGEDOWN":   "pagedown",
	"F1":         "f1",
	"F2":         "f2",
	"F3":         "f3",
	"F4":         "f4",
	"F5":         "f5",
	"F6":         "f6",
	"F7":         "f7",
	"F8":         "f8",
	"F9":         "f9",
	"F10":        "f10",
	"F11":        "f11",
	"F12":        "f12",
}

// ResolveKey maps a key token to a backend key identifier. Single printable
// characters map by their lowered form; everything else must be in the named
// key table.
func ResolveKey(token string) (string, error) {
	if len([]rune(token)) == 1 {
		return strings.ToLower(token), nil
	}
	if key, ok := namedKeys[strings.ToUpper(token)]; ok {
		return key, nil
	}
	return "", &UnknownKeyError{Token: token}
}

// ResolveModifier maps a modifier token to a backend key identifier.
func ResolveModifier(token string) (string, error) {
	switch strings.ToLower(token) {
	case "ctrl", "control":
		return "ctrl", nil
	case "alt":
		return "alt", nil
	case "shift":
		return "shift", nil
	case "meta", "cmd", "command", "win", "super":
		return "cmd", nil
	default:
		return "", &UnknownModifierError{Token: token}
	}
}
