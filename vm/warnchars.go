package vm

import "fmt"

// WarningChars configures the six code points the machine treats
// specially; every other input character is copied through
// untouched. The zero value is not valid -- use DefaultWarningChars
// or fill in every field.
type WarningChars struct {
	Open    rune // begin a verbatim quote
	Close   rune // end a verbatim quote
	Def     rune // definition introducer
	ArgSep  rune // argument separator within a call
	Apply   rune // apply / call terminator
	LoadArg rune // argument reference
}

// DefaultWarningChars returns Strachey's original warning-character
// table. Def is customarily overridden (commonly to '&') so that the
// built-in macro names, which are plain ASCII spellings, stay
// reachable from source that also wants '§' available as ordinary
// text.
func DefaultWarningChars() WarningChars {
	return WarningChars{
		Open:    '<',
		Close:   '>',
		Def:     '§',
		ArgSep:  ',',
		Apply:   ';',
		LoadArg: '~',
	}
}

func (wc WarningChars) validate() error {
	seen := map[rune]string{}
	for name, r := range map[string]rune{
		"Open": wc.Open, "Close": wc.Close, "Def": wc.Def,
		"ArgSep": wc.ArgSep, "Apply": wc.Apply, "LoadArg": wc.LoadArg,
	} {
		if other, ok := seen[r]; ok {
			return fmt.Errorf("gpm: warning characters must be distinct, %s and %s both use %q", other, name, r)
		}
		seen[r] = name
	}
	return nil
}
