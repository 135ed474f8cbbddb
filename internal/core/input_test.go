package core

import "testing"

func TestActionString(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
