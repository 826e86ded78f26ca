package domain

import (
	"fmt"
	"strings"
)

// Action is what a job does with one input file. Parse is only valid for raw
// files.
type Action int

const (
	ActionIgnore Action = iota
	ActionCopy
	ActionMove
	ActionParse
)

func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionParse:
		return "parse"
	default:
		return "ignore"
	}
}

// ParseAction parses an action name. Parse is rejected unless allowParse is set.
func ParseAction(value string, allowParse bool) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "copy":
		return ActionCopy, nil
	case "move":
		return ActionMove, nil
	case "ignore":
		return ActionIgnore, nil
	case "parse":
		if allowParse {
			return ActionParse, nil
		}
		return ActionIgnore, fmt.Errorf("action %q is only available for raw files", value)
	default:
		return ActionIgnore, fmt.Errorf("unknown action %q", value)
	}
}

// ExistingAction decides what happens when the output path is already taken.
type ExistingAction int

const (
	ExistingIgnore ExistingAction = iota
	ExistingRename
)

func (e ExistingAction) String() string {
	if e == ExistingRename {
		return "rename"
	}
	return "ignore"
}

func ParseExistingAction(value string) (ExistingAction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ignore":
		return ExistingIgnore, nil
	case "rename":
		return ExistingRename, nil
	default:
		return ExistingIgnore, fmt.Errorf("unknown existing-file action %q", value)
	}
}

// Policy is the per-run set of actions, shared read-only by every job.
type Policy struct {
	OnRaw      Action
	OnImage    Action
	OnFile     Action
	OnExisting ExistingAction
}

// ActionFor returns the configured action for a file kind. Parse never leaks
// to non-raw kinds even if a caller built the policy by hand.
func (p Policy) ActionFor(kind FileKind) Action {
	var action Action
	switch kind {
	case KindRaw:
		return p.OnRaw
	case KindImage:
		action = p.OnImage
	default:
		action = p.OnFile
	}
	if action == ActionParse {
		return ActionIgnore
	}
	return action
}
