package editor

import "testing"

func TestInputStage(t *testing.T) {
	s := NewInputStage("pH")
	if s.Selected() != "pH" || s.Value() != 0 {
		t.Fatalf("new stage = (%s, %v), want (pH, 0)", s.Selected(), s.Value())
	}

	s.SetSelection("Iron", 0.4)
	if s.Selected() != "Iron" || s.Value() != 0.4 {
		t.Errorf("after SetSelection = (%s, %v), want (Iron, 0.4)", s.Selected(), s.Value())
	}

	s.ResetValue()
	if s.Selected() != "Iron" {
		t.Errorf("ResetValue changed the selection to %s", s.Selected())
	}
	if s.Value() != 0 {
		t.Errorf("ResetValue left value %v", s.Value())
	}

	s.SetParam("Lead")
	s.SetValue(0.01)
	if e := s.Entry(); e.Name != "Lead" || e.Value != 0.01 {
		t.Errorf("Entry() = %v, want Lead: 0.01", e)
	}
}
