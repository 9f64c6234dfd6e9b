package editor

import "github.com/bft-labs/wqsuite/internal/domain"

// InputStage holds the staging fields: the parameter currently selected and
// the value currently typed. It is the "next entry to be added" and the
// landing target when an entry is pulled back for editing.
type InputStage struct {
	selected domain.ParameterID
	value    float64
}

// NewInputStage returns a stage with the given default parameter and a zero value.
func NewInputStage(defaultParam domain.ParameterID) InputStage {
	return InputStage{selected: defaultParam}
}

// SetSelection overwrites both fields in one update.
func (s *InputStage) SetSelection(param domain.ParameterID, value float64) {
	s.selected = param
	s.value = value
}

// SetParam changes only the selected parameter.
func (s *InputStage) SetParam(param domain.ParameterID) {
	s.selected = param
}

// SetValue changes only the staged value.
func (s *InputStage) SetValue(value float64) {
	s.value = value
}

// ResetValue sets the staged value back to zero and keeps the selected
// parameter, so the next entry can be typed against the same selection.
func (s *InputStage) ResetValue() {
	s.value = 0
}

// Selected returns the staged parameter.
func (s InputStage) Selected() domain.ParameterID { return s.selected }

// Value returns the staged value.
func (s InputStage) Value() float64 { return s.value }

// Entry builds the entry the stage currently describes.
func (s InputStage) Entry() domain.Entry {
	return domain.Entry{Name: s.selected, Value: s.value}
}
