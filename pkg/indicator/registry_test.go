package indicator

import (
	"errors"
	"testing"

	"github.com/mohamedkhairy/ta-engine/pkg/ta"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
)

// stubDefinition returns a definition that always yields an empty success
func stubDefinition(name string) *Definition {
	return &Definition{
		Name:   name,
		Output: OutputReal,
		lookback: func(*candle.Settings, Options) int {
			return 0
		},
		compute: func(*candle.Settings, ta.Series, int, int, Options) Output {
			return Output{}
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	def1 := stubDefinition("test1")
	def2 := stubDefinition("test2")

	// Register first definition
	if err := registry.Register(def1); err != nil {
		t.Fatalf("Failed to register definition: %v", err)
	}

	// Register second definition
	if err := registry.Register(def2); err != nil {
		t.Fatalf("Failed to register second definition: %v", err)
	}

	// Try to register duplicate
	if err := registry.Register(def1); err == nil {
		t.Error("Expected error when registering duplicate definition")
	}

	// Try to register nil
	if err := registry.Register(nil); err == nil {
		t.Error("Expected error when registering nil definition")
	}

	// Definitions without compute functions are rejected
	if err := registry.Register(&Definition{Name: "bare"}); err == nil {
		t.Error("Expected error when registering definition without compute function")
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	def := stubDefinition("test")
	_ = registry.Register(def)

	retrieved, err := registry.Get("test")
	if err != nil {
		t.Fatalf("Failed to get definition: %v", err)
	}
	if retrieved != def {
		t.Error("Retrieved definition is not the same instance")
	}

	_, err = registry.Get("nonexistent")
	if !errors.Is(err, ErrUnknownIndicator) {
		t.Errorf("Expected ErrUnknownIndicator, got %v", err)
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := NewRegistry()

	_ = registry.Register(stubDefinition("b"))
	_ = registry.Register(stubDefinition("c"))
	_ = registry.Register(stubDefinition("a"))

	names := registry.Names()
	if len(names) != 3 {
		t.Fatalf("Expected 3 names, got %d", len(names))
	}
	for i, want := range []string{"a", "b", "c"} {
		if names[i] != want {
			t.Errorf("Expected %q at position %d, got %q", want, i, names[i])
		}
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(stubDefinition("test"))

	if err := registry.Unregister("test"); err != nil {
		t.Fatalf("Failed to unregister definition: %v", err)
	}

	if _, err := registry.Get("test"); err == nil {
		t.Error("Expected error when getting unregistered definition")
	}

	if err := registry.Unregister("nonexistent"); err == nil {
		t.Error("Expected error when unregistering non-existent definition")
	}

	if registry.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", registry.Len())
	}
}
