package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// DebugInfo identifies an entity in logs and tooling. It records a
// human-readable name, the source location the entity was created at and a
// unique id that survives renames.
type DebugInfo struct {
	id        uuid.UUID
	name      string
	file      string
	line      int
	createdAt time.Time
}

// NewDebugInfo creates a DebugInfo with the given name and captures the
// caller's source location.
func NewDebugInfo(name string) DebugInfo {
	di := DebugInfo{
		id:        uuid.New(),
		name:      name,
		createdAt: time.Now(),
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		di.file = filepath.Base(file)
		di.line = line
	}
	return di
}

// ID returns the unique id of the entity.
func (di DebugInfo) ID() uuid.UUID {
	return di.id
}

// Name returns the human-readable name of the entity.
func (di DebugInfo) Name() string {
	return di.name
}

// Location returns the source location the entity was created at.
func (di DebugInfo) Location() string {
	return fmt.Sprintf("%s:%d", di.file, di.line)
}

// CreatedAt returns the time the entity was created.
func (di DebugInfo) CreatedAt() time.Time {
	return di.createdAt
}

func (di DebugInfo) String() string {
	return fmt.Sprintf("%s (%s)", di.name, di.Location())
}
