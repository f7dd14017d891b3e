package keyword

import (
	"errors"
	"sort"
)

// DefaultMaxPriorities is the number of priority slots when none is configured.
const DefaultMaxPriorities = 5

var (
	ErrPriorityFull    = errors.New("all priority slots are taken")
	ErrPriorityMissing = errors.New("item has no priority")
	ErrInvalidSlot     = errors.New("priority slot out of range")
)

// PrioritySelection assigns items to numbered slots 1..max.
type PrioritySelection struct {
	max   int
	slots map[string]int
}

// NewPrioritySelection restores a priority assignment. Entries outside
// 1..max and duplicate slots are dropped.
func NewPrioritySelection(max int, slots map[string]int) *PrioritySelection {
	if max <= 0 {
		max = DefaultMaxPriorities
	}
	p := &PrioritySelection{max: max, slots: make(map[string]int, len(slots))}

	ids := make([]string, 0, len(slots))
	for id := range slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	taken := make(map[int]bool, len(slots))
	for _, id := range ids {
		slot := slots[id]
		if id == "" || slot < 1 || slot > max || taken[slot] {
			continue
		}
		taken[slot] = true
		p.slots[id] = slot
	}
	return p
}

func (p *PrioritySelection) Max() int {
	return p.max
}

// Assign gives id the lowest free slot and returns it. An id that already
// has a slot keeps it.
func (p *PrioritySelection) Assign(id string) (int, error) {
	if slot, ok := p.slots[id]; ok {
		return slot, nil
	}
	taken := p.taken()
	for slot := 1; slot <= p.max; slot++ {
		if !taken[slot] {
			p.slots[id] = slot
			return slot, nil
		}
	}
	return 0, ErrPriorityFull
}

// Remove frees the slot of id. Other slots are not renumbered.
func (p *PrioritySelection) Remove(id string) {
	delete(p.slots, id)
}

// Move places id at slot, swapping with the current occupant if any.
func (p *PrioritySelection) Move(id string, slot int) error {
	if slot < 1 || slot > p.max {
		return ErrInvalidSlot
	}
	current, ok := p.slots[id]
	if !ok {
		return ErrPriorityMissing
	}
	for other, otherSlot := range p.slots {
		if otherSlot == slot && other != id {
			p.slots[other] = current
			break
		}
	}
	p.slots[id] = slot
	return nil
}

// Slot returns the slot of id.
func (p *PrioritySelection) Slot(id string) (int, bool) {
	slot, ok := p.slots[id]
	return slot, ok
}

// Ordered returns the prioritized ids sorted by slot.
func (p *PrioritySelection) Ordered() []string {
	ids := make([]string, 0, len(p.slots))
	for id := range p.slots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return p.slots[ids[i]] < p.slots[ids[j]] })
	return ids
}

// Slots returns a copy of the id -> slot assignment.
func (p *PrioritySelection) Slots() map[string]int {
	out := make(map[string]int, len(p.slots))
	for id, slot := range p.slots {
		out[id] = slot
	}
	return out
}

func (p *PrioritySelection) taken() map[int]bool {
	taken := make(map[int]bool, len(p.slots))
	for _, slot := range p.slots {
		taken[slot] = true
	}
	return taken
}
