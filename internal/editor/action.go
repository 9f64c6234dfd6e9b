package editor

import (
	"fmt"

	"github.com/bft-labs/wqsuite/internal/domain"
)

// ActionKind identifies one user action on the editor.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionEdit
	ActionDelete
	ActionClearAll
	ActionSelectParam
	ActionSetValue
)

// String returns the action name used in logs.
func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "add"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	case ActionClearAll:
		return "clear_all"
	case ActionSelectParam:
		return "select_param"
	case ActionSetValue:
		return "set_value"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// IsRowAction reports whether the action addresses a row by index.
func (k ActionKind) IsRowAction() bool {
	return k == ActionEdit || k == ActionDelete
}

// Action is one dispatched user action.
//
// Index and Revision are used by row actions (Edit, Delete): Revision is the
// revision of the snapshot the index was read from. Param is used by
// SelectParam and Value by SetValue.
type Action struct {
	Kind     ActionKind
	Index    int
	Revision uint64
	Param    domain.ParameterID
	Value    float64
}

// Add returns an Add action.
func Add() Action { return Action{Kind: ActionAdd} }

// ClearAll returns a ClearAll action.
func ClearAll() Action { return Action{Kind: ActionClearAll} }

// SelectParam returns an action staging param.
func SelectParam(param domain.ParameterID) Action {
	return Action{Kind: ActionSelectParam, Param: param}
}

// SetValue returns an action staging value.
func SetValue(value float64) Action {
	return Action{Kind: ActionSetValue, Value: value}
}

// EditRow returns an Edit action for a row of snapshot s.
func EditRow(s Snapshot, index int) Action {
	return Action{Kind: ActionEdit, Index: index, Revision: s.Revision}
}

// DeleteRow returns a Delete action for a row of snapshot s.
func DeleteRow(s Snapshot, index int) Action {
	return Action{Kind: ActionDelete, Index: index, Revision: s.Revision}
}

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeInfo
	NoticeWarning
	NoticeError
)

// String returns the notice kind name.
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeInfo:
		return "info"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "none"
	}
}

// Notice is the non-fatal, user-facing outcome of an action.
// The zero value means there is nothing to show.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether the notice carries nothing to show.
func (n Notice) Empty() bool { return n.Kind == NoticeNone }

// Success, Info, Warning and Error build notices of the matching kind.
func Success(text string) Notice { return Notice{Kind: NoticeSuccess, Text: text} }
func Info(text string) Notice    { return Notice{Kind: NoticeInfo, Text: text} }
func Warning(text string) Notice { return Notice{Kind: NoticeWarning, Text: text} }
func Error(text string) Notice   { return Notice{Kind: NoticeError, Text: text} }
