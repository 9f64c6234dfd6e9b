package editor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/ports"
	"github.com/bft-labs/wqsuite/pkg/log"
)

// ErrConflictingEdits is returned when one batch of row actions holds more
// than one Edit. Each Edit overwrites the staging fields, so all but the
// last would be lost.
var ErrConflictingEdits = errors.New("wqsuite: more than one edit in a row batch")

// BatchEditor orchestrates Add, Edit, Delete and ClearAll against an
// EntryStore and an InputStage. It is memoryless beyond those two
// structures: there is no pending mode.
type BatchEditor struct {
	store    *EntryStore
	stage    InputStage
	names    []domain.ParameterID
	revision uint64
	logger   ports.Logger
}

// Option configures a BatchEditor.
type Option func(*BatchEditor)

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(logger ports.Logger) Option {
	return func(e *BatchEditor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an editor over the given catalog names. The first name is the
// default staged parameter. The names are copied and never re-read.
func New(names []domain.ParameterID, opts ...Option) (*BatchEditor, error) {
	if len(names) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	e := &BatchEditor{
		store:  NewEntryStore(),
		stage:  NewInputStage(names[0]),
		names:  append([]domain.ParameterID(nil), names...),
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Names returns the catalog the editor was created with.
func (e *BatchEditor) Names() []domain.ParameterID {
	return append([]domain.ParameterID(nil), e.names...)
}

// Snapshot returns the current state as an immutable value.
func (e *BatchEditor) Snapshot() Snapshot {
	return Snapshot{
		Entries:  e.store.Entries(),
		Selected: e.stage.Selected(),
		Value:    e.stage.Value(),
		Revision: e.revision,
	}
}

// Entries returns a copy of the batch.
func (e *BatchEditor) Entries() []domain.Entry {
	return e.store.Entries()
}

// Len returns the number of entries.
func (e *BatchEditor) Len() int {
	return e.store.Len()
}

// Add appends the staged entry unless its parameter is already present.
// A duplicate leaves the editor unchanged and returns a warning notice.
func (e *BatchEditor) Add() Notice {
	entry := e.stage.Entry()
	if e.store.IndexOf(entry.Name) >= 0 {
		e.logger.Info("duplicate entry rejected", ports.Param(entry.Name))
		return Warning(fmt.Sprintf("%s is already in the list!", entry.Name))
	}
	e.store.Append(entry)
	e.stage.ResetValue()
	e.bump()
	e.logger.Debug("entry added",
		ports.Param(entry.Name),
		ports.Float64("value", entry.Value),
		ports.Int("size", e.store.Len()),
	)
	return Success(fmt.Sprintf("Added %s", entry.Name))
}

// Edit pulls the entry at index back into the staging fields and removes it
// from the batch. The entry is read before it is removed, and removal is the
// last step, so it is never lost and never present twice.
func (e *BatchEditor) Edit(index int) error {
	entry, err := e.store.At(index)
	if err != nil {
		return e.fault(ActionEdit, index, err)
	}
	e.stage.SetSelection(entry.Name, entry.Value)
	if _, err := e.store.RemoveAt(index); err != nil {
		return e.fault(ActionEdit, index, err)
	}
	e.bump()
	e.logger.Debug("entry pulled back for edit",
		ports.Param(entry.Name),
		ports.Int("index", index),
	)
	return nil
}

// Delete removes the entry at index.
func (e *BatchEditor) Delete(index int) error {
	entry, err := e.store.RemoveAt(index)
	if err != nil {
		return e.fault(ActionDelete, index, err)
	}
	e.bump()
	e.logger.Debug("entry deleted",
		ports.Param(entry.Name),
		ports.Int("index", index),
	)
	return nil
}

// ClearAll empties the batch. The staging fields are left unchanged.
func (e *BatchEditor) ClearAll() {
	n := e.store.Len()
	e.store.Clear()
	e.bump()
	e.logger.Debug("batch cleared", ports.Int("removed", n))
}

// SelectParam stages a parameter from the catalog.
func (e *BatchEditor) SelectParam(param domain.ParameterID) error {
	if !e.known(param) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownParameter, param)
	}
	e.stage.SetParam(param)
	return nil
}

// SetValue stages a lab value.
func (e *BatchEditor) SetValue(value float64) {
	e.stage.SetValue(value)
}

// Dispatch applies one action and returns the resulting snapshot.
//
// Row actions must carry the revision of the snapshot their index was read
// from; a mismatch returns ErrStaleSnapshot without mutating anything.
// Errors are contract faults; user-facing outcomes are returned as notices.
func (e *BatchEditor) Dispatch(a Action) (Snapshot, Notice, error) {
	var notice Notice
	switch a.Kind {
	case ActionAdd:
		notice = e.Add()
	case ActionEdit, ActionDelete:
		if a.Revision != e.revision {
			return e.Snapshot(), Notice{}, e.stale(a)
		}
		var err error
		if a.Kind == ActionEdit {
			err = e.Edit(a.Index)
		} else {
			err = e.Delete(a.Index)
		}
		if err != nil {
			return e.Snapshot(), Notice{}, err
		}
	case ActionClearAll:
		e.ClearAll()
	case ActionSelectParam:
		if err := e.SelectParam(a.Param); err != nil {
			return e.Snapshot(), Notice{}, err
		}
	case ActionSetValue:
		e.SetValue(a.Value)
	default:
		return e.Snapshot(), Notice{}, fmt.Errorf("unsupported action %s", a.Kind)
	}
	return e.Snapshot(), notice, nil
}

// ApplyRowActions applies several Edit/Delete actions computed from the same
// snapshot. They are applied in strictly descending index order, so removing
// one row never shifts the index of a row still to be processed.
//
// The batch is checked as a whole before anything is applied: every action
// must be a row action of the current revision with an in-range index, at most
// one may be an Edit, and a row addressed twice is acted on once (the first
// action for it wins).
func (e *BatchEditor) ApplyRowActions(actions []Action) (Snapshot, error) {
	if len(actions) == 0 {
		return e.Snapshot(), nil
	}

	ordered := make([]Action, 0, len(actions))
	seen := make(map[int]bool, len(actions))
	edits := 0
	for _, a := range actions {
		if !a.Kind.IsRowAction() {
			return e.Snapshot(), fmt.Errorf("row batch: %s is not a row action", a.Kind)
		}
		if a.Revision != e.revision {
			return e.Snapshot(), e.stale(a)
		}
		if a.Index < 0 || a.Index >= e.store.Len() {
			return e.Snapshot(), e.fault(a.Kind, a.Index,
				fmt.Errorf("%w: %d (size %d)", domain.ErrIndexOutOfRange, a.Index, e.store.Len()))
		}
		if seen[a.Index] {
			e.logger.Debug("duplicate row action dropped",
				ports.String("action", a.Kind.String()),
				ports.Int("index", a.Index),
			)
			continue
		}
		seen[a.Index] = true
		if a.Kind == ActionEdit {
			edits++
		}
		ordered = append(ordered, a)
	}
	if edits > 1 {
		return e.Snapshot(), ErrConflictingEdits
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index > ordered[j].Index
	})

	for _, a := range ordered {
		var err error
		if a.Kind == ActionEdit {
			err = e.Edit(a.Index)
		} else {
			err = e.Delete(a.Index)
		}
		if err != nil {
			return e.Snapshot(), err
		}
	}
	return e.Snapshot(), nil
}

func (e *BatchEditor) known(param domain.ParameterID) bool {
	for _, n := range e.names {
		if n == param {
			return true
		}
	}
	return false
}

func (e *BatchEditor) bump() {
	e.revision++
}

func (e *BatchEditor) fault(kind ActionKind, index int, err error) error {
	e.logger.Error("row action against invalid index",
		ports.String("action", kind.String()),
		ports.Int("index", index),
		ports.Int("size", e.store.Len()),
		ports.Err(err),
	)
	return fmt.Errorf("%s row %d: %w", kind, index, err)
}

func (e *BatchEditor) stale(a Action) error {
	e.logger.Error("row action against stale snapshot",
		ports.String("action", a.Kind.String()),
		ports.Int64("revision", int64(a.Revision)),
		ports.Int64("current", int64(e.revision)),
	)
	return fmt.Errorf("%s row %d: %w", a.Kind, a.Index, domain.ErrStaleSnapshot)
}
