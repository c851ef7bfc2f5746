package history

import (
	"fmt"
	"time"

	"github.com/dshills/undotree/internal/engine/tracking"
)

// EntryKind distinguishes user commits from externally applied ops.
type EntryKind uint8

const (
	// UserOp is an entry committed by closing a batch.
	UserOp EntryKind = iota

	// RobotOp is an entry recorded by ApplyExternal.
	RobotOp
)

// String returns a human-readable representation of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case UserOp:
		return "user"
	case RobotOp:
		return "robot"
	default:
		return "unknown"
	}
}

// Entry is one recorded change.
type Entry struct {
	Kind    EntryKind
	Version VersionID
	Op      tracking.Op
	Time    time.Time
}

// String returns a short description of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.Version)
}
