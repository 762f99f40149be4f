package store

import (
	"context"
	"sync"

	"instructhub/internal/casebook/models"
)

// Memory is a mutex-guarded in-memory ProspectStore.
type Memory struct {
	mu        sync.RWMutex
	prospects []models.Prospect
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Replace swaps the full snapshot. The store owns the slice after the call.
func (s *Memory) Replace(prospects []models.Prospect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prospects = prospects
}

// Prospects returns a deep copy of the snapshot. SetEIDResult mutates the
// store's backing arrays in place, so a shallow copy would let a caller read
// nested record slices while they are being written under the store lock.
func (s *Memory) Prospects(_ context.Context) ([]models.Prospect, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prospect, len(s.prospects))
	for i := range s.prospects {
		out[i] = s.prospects[i].Clone()
	}
	return out, nil
}

func (s *Memory) SetEIDResult(_ context.Context, instructionRef, status, result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	for pi := range s.prospects {
		p := &s.prospects[pi]
		for vi := range p.IdentityVerifications {
			if p.IdentityVerifications[vi].InstructionRef == instructionRef {
				p.IdentityVerifications[vi].EIDStatus = status
				p.IdentityVerifications[vi].EIDOverallResult = result
				updated = true
			}
		}
		for ii := range p.Instructions {
			inst := &p.Instructions[ii]
			for vi := range inst.IdentityVerifications {
				if inst.IdentityVerifications[vi].InstructionRef == instructionRef {
					inst.IdentityVerifications[vi].EIDStatus = status
					inst.IdentityVerifications[vi].EIDOverallResult = result
					updated = true
				}
			}
		}
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
