package scheduling

import (
	"sync"

	"github.com/google/uuid"
)

// TenantLocks serializes check-then-write sequences per salon. Two
// concurrent creates racing for the same slot, or for the last unit of
// quota, take the same mutex and therefore see each other's committed
// rows. All writes for a tenant are funneled through this process, so an
// in-process mutex is a sufficient serialization boundary.
//
// Built once in main and shared by every component that writes under a
// quota or conflict check.
type TenantLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewTenantLocks() *TenantLocks {
	return &TenantLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (t *TenantLocks) forSalon(salonID uuid.UUID) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[salonID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[salonID] = l
	}
	return l
}
