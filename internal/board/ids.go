package board

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync"

	"kanban-cli/internal/model"

	"github.com/google/uuid"
)

// IDGenerator mints identifiers for new columns and tasks. exists reports
// whether a candidate is already taken within the target collection;
// implementations must never return a taken id.
type IDGenerator interface {
	NewID(prefix string, exists func(model.ID) bool) model.ID
}

const (
	columnIDPrefix = "col"
	taskIDPrefix   = "task"
)

// RandomIDs returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding), ~40 bits of space, retried on collision.
type RandomIDs struct{}

func (RandomIDs) NewID(prefix string, exists func(model.ID) bool) model.ID {
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	for {
		var b [5]byte // 40 bits -> 8 base32 chars
		if _, err := rand.Read(b[:]); err != nil {
			// crypto/rand only fails when the OS source is unusable.
			panic(fmt.Sprintf("board: read random id: %v", err))
		}
		id := model.ID(prefix + "-" + strings.ToLower(enc.EncodeToString(b[:])))
		if exists == nil || !exists(id) {
			return id
		}
	}
}

// UUIDIDs uses the first group of a v4 UUID as the suffix.
type UUIDIDs struct{}

func (UUIDIDs) NewID(prefix string, exists func(model.ID) bool) model.ID {
	for {
		u := uuid.NewString()
		id := model.ID(prefix + "-" + u[:8])
		if exists == nil || !exists(id) {
			return id
		}
	}
}

// SequenceIDs hands out prefix-1, prefix-2, ... skipping ids already taken.
// Deterministic; handy in tests and fixtures.
type SequenceIDs struct {
	mu   sync.Mutex
	next map[string]int
}

func (g *SequenceIDs) NewID(prefix string, exists func(model.ID) bool) model.ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next == nil {
		g.next = map[string]int{}
	}
	for {
		g.next[prefix]++
		id := model.ID(fmt.Sprintf("%s-%d", prefix, g.next[prefix]))
		if exists == nil || !exists(id) {
			return id
		}
	}
}

// GeneratorByName maps a config value to a generator ("random" is the default).
func GeneratorByName(name string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		return RandomIDs{}, nil
	case "uuid":
		return UUIDIDs{}, nil
	case "seq", "sequence":
		return &SequenceIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id generator: %s", name)
	}
}
