package registry

import (
	"errors"
	"image"
	"testing"

	"github.com/vovakirdan/colorbubble/internal/level"
)

func testSet(t *testing.T) *level.Set {
	t.Helper()
	o, err := level.FromImage("one", image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	return level.NewSet(o)
}

func TestRegisterAndLoad(t *testing.T) {
	set := testSet(t)
	Register(Pack{ID: "test-register", Load: func() (*level.Set, error) { return set, nil }})

	if !Exists("test-register") {
		t.Fatal("Exists() should report the registered pack")
	}
	got, err := Load("test-register")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != set {
		t.Error("Load() should return the pack's set")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-register" {
			found = true
			if info.Title != "test-register" {
				t.Errorf("Title = %q, expected the ID as fallback", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered pack")
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("no-such-pack"); err == nil {
		t.Error("Load() of an unknown pack should fail")
	}
}

func TestLoadWrapsError(t *testing.T) {
	boom := errors.New("boom")
	Register(Pack{ID: "test-broken", Load: func() (*level.Set, error) { return nil, boom }})
	if _, err := Load("test-broken"); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, expected to wrap boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	load := func() (*level.Set, error) { return nil, nil }
	Register(Pack{ID: "test-dup", Load: load})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(Pack{ID: "test-dup", Load: load})
}

func TestListSorted(t *testing.T) {
	load := func() (*level.Set, error) { return nil, nil }
	Register(Pack{ID: "test-zz", Title: "Z", Load: load})
	Register(Pack{ID: "test-aa", Title: "A", Load: load})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
