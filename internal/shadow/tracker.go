package shadow

import (
	"sync"

	"github.com/MKhiriev/go-shadow-sync/models"
)

// handle addresses a tracker slot. A handle whose generation no longer
// matches its slot refers to a removed message.
type handle struct {
	index      uint32
	generation uint32
}

type trackerSlot struct {
	generation uint32
	occupied   bool
	msg        models.PendingMessage
}

// tracker is an arena of in-flight messages. Freed slots are reused with a
// bumped generation, tracking ids never are.
type tracker struct {
	mu     sync.Mutex
	slots  []trackerSlot
	free   []uint32
	nextID uint64
	count  int
}

// add stores msg under a fresh tracking id and returns its handle together
// with the stored copy.
func (t *tracker) add(msg models.PendingMessage) (handle, models.PendingMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	msg.TrackingID = t.nextID

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, trackerSlot{})
		index = uint32(len(t.slots) - 1)
	}

	slot := &t.slots[index]
	slot.occupied = true
	slot.msg = msg
	t.count++

	return handle{index: index, generation: slot.generation}, msg
}

func (t *tracker) get(h handle) (models.PendingMessage, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.lookup(h)
	if !ok {
		return models.PendingMessage{}, false
	}
	return slot.msg, true
}

// remove frees the slot of h. It reports false for stale handles.
func (t *tracker) remove(h handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.lookup(h)
	if !ok {
		return false
	}
	slot.occupied = false
	slot.msg = models.PendingMessage{}
	slot.generation++
	t.free = append(t.free, h.index)
	t.count--
	return true
}

func (t *tracker) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// clear drops every message and invalidates all outstanding handles.
func (t *tracker) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i].occupied {
			t.slots[i].occupied = false
			t.slots[i].msg = models.PendingMessage{}
			t.slots[i].generation++
			t.free = append(t.free, uint32(i))
		}
	}
	t.count = 0
}

func (t *tracker) lookup(h handle) (*trackerSlot, bool) {
	if int(h.index) >= len(t.slots) {
		return nil, false
	}
	slot := &t.slots[h.index]
	if !slot.occupied || slot.generation != h.generation {
		return nil, false
	}
	return slot, true
}
