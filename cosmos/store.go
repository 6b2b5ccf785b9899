package cosmos

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-cosmos/generator"
)

// Store generates populations and indexes the resident ones by ID
// It is the generator seen by the navigator
type Store struct {
	params   generator.Params
	resident map[uuid.UUID]*generator.Population
	observer Observer
}

func newStore(params generator.Params, observer Observer) *Store {
	return &Store{
		params:   params,
		resident: make(map[uuid.UUID]*generator.Population),
		observer: observer,
	}
}

// Generate runs the pass for tier and records the result as resident
func (s *Store) Generate(tier generator.Tier, seed uint64) *generator.Population {
	start := time.Now()
	pop := generator.Generate(tier, seed, s.params)
	if pop == nil {
		return nil
	}
	s.resident[pop.ID] = pop
	if s.observer != nil {
		s.observer.ObserveGeneration(tier, pop.Len(), time.Since(start))
	}
	return pop
}

// Drop forgets a discarded population
// A regenerated population sharing the ID is kept
func (s *Store) Drop(pop *generator.Population) {
	if pop != nil && s.resident[pop.ID] == pop {
		delete(s.resident, pop.ID)
	}
}

// Lookup returns a resident population by ID
func (s *Store) Lookup(id uuid.UUID) *generator.Population {
	return s.resident[id]
}

func (s *Store) Len() int {
	return len(s.resident)
}

// Params returns the parameters used by the next regeneration
func (s *Store) Params() generator.Params {
	return s.params
}

func (s *Store) setParams(p generator.Params) {
	s.params = p
}

func (s *Store) clear() {
	clear(s.resident)
}
