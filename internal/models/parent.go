// internal/models/parent.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ParentType discriminates which entity a task hangs off.
type ParentType string

const (
	ParentTypeCycle ParentType = "cycle"
	ParentTypeShoot ParentType = "shoot"
)

// ParseParentType converts a string to a ParentType
func ParseParentType(s string) (ParentType, error) {
	switch s {
	case string(ParentTypeCycle):
		return ParentTypeCycle, nil
	case string(ParentTypeShoot):
		return ParentTypeShoot, nil
	default:
		return "", fmt.Errorf("invalid parent type: %q", s)
	}
}

// ParentRef identifies the owning cycle or shoot of a task. Tasks carry the
// pair (type, id) instead of two nullable foreign keys, so every query
// dispatches on the tag.
type ParentRef struct {
	Type ParentType
	ID   uuid.UUID
}

// CycleRef returns a ParentRef pointing at a cycle.
func CycleRef(id uuid.UUID) ParentRef {
	return ParentRef{Type: ParentTypeCycle, ID: id}
}

// ShootRef returns a ParentRef pointing at a shoot.
func ShootRef(id uuid.UUID) ParentRef {
	return ParentRef{Type: ParentTypeShoot, ID: id}
}

func (p ParentRef) String() string {
	return fmt.Sprintf("%s/%s", p.Type, p.ID)
}
