package vm

import "testing"

func TestDefaultWarningCharsValid(t *testing.T) {
	if err := DefaultWarningChars().validate(); err != nil {
		t.Errorf("DefaultWarningChars().validate() = %v, want nil", err)
	}
}

func TestWarningCharsValidateRejectsCollisions(t *testing.T) {
	wc := DefaultWarningChars()
	wc.Def = wc.Open // collide with another field

	if err := wc.validate(); err == nil {
		t.Errorf("validate() with colliding Open/Def = nil error, wanted error")
	}
}
