package core

import (
	"sync"
	"testing"
)

func newTestRegistry() *Registry {
	return NewRegistry(func() Position { return newFakePosition() })
}

func TestRegistryCreateLookupDelete(t *testing.T) {
	reg := newTestRegistry()

	room := reg.Create()
	if room.ID == "" || room.pos == nil {
		t.Fatalf("half-built room: %+v", room)
	}

	got, ok := reg.Lookup(room.ID)
	if !ok || got != room {
		t.Fatalf("lookup returned %v, %v", got, ok)
	}

	reg.Delete(room.ID)
	if _, ok := reg.Lookup(room.ID); ok {
		t.Fatal("room resolvable after delete")
	}

	// Deleting an absent id is a no-op, not an error.
	reg.Delete(room.ID)
	reg.Delete("never-existed")
}

func TestRegistryIDsAreUnique(t *testing.T) {
	reg := newTestRegistry()

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		room := reg.Create()
		if _, dup := seen[room.ID]; dup {
			t.Fatalf("duplicate room id %s", room.ID)
		}
		seen[room.ID] = struct{}{}
	}
}

func TestRegistryConcurrentCreate(t *testing.T) {
	reg := newTestRegistry()

	const workers = 16
	const perWorker = 50

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- reg.Create().ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("concurrent creates produced colliding id %s", id)
		}
		seen[id] = struct{}{}
		if _, ok := reg.Lookup(id); !ok {
			t.Fatalf("id %s handed out but not resolvable", id)
		}
	}
}
