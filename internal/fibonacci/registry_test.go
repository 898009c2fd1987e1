package fibonacci

import (
	"context"
	"math/big"
	"sort"
	"testing"
)

func TestDefaultFactory_List(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	names := factory.List()
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() is not sorted: %v", names)
	}

	want := []string{"closed-form", "dynamic", "memoization", "recursive"}
	for _, name := range want {
		if !factory.Has(name) {
			t.Errorf("expected default strategy %q to be registered", name)
		}
	}
	if len(names) < len(want) {
		t.Errorf("List() returned %d names, want at least %d", len(names), len(want))
	}
}

func TestDefaultFactory_GetCachesInstances(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	first, err := factory.Get("dynamic")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	second, err := factory.Get("dynamic")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if first != second {
		t.Error("Get returned distinct instances for the same name")
	}
}

func TestDefaultFactory_CreateReturnsFreshInstances(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	first, err := factory.Create("dynamic")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := factory.Create("dynamic")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first == second {
		t.Error("Create returned the same instance twice")
	}
}

func TestDefaultFactory_UnknownStrategy(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	if _, err := factory.Get("fast-doubling"); err == nil {
		t.Error("Get: expected an error for an unregistered name")
	}
	if _, err := factory.Create("fast-doubling"); err == nil {
		t.Error("Create: expected an error for an unregistered name")
	}
	if factory.Has("fast-doubling") {
		t.Error("Has: expected false for an unregistered name")
	}
}

func TestDefaultFactory_MustGetPanics(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	defer func() {
		if recover() == nil {
			t.Error("MustGet did not panic for an unregistered name")
		}
	}()
	factory.MustGet("fast-doubling")
}

// constantStrategy is a trivial core used to exercise custom registration.
type constantStrategy struct{}

func (constantStrategy) Name() string { return "Constant" }
func (constantStrategy) MaxN() uint64 { return 10 }
func (constantStrategy) compute(n uint64) (*big.Int, uint64) {
	return big.NewInt(42), 1
}

func TestDefaultFactory_RegisterCustomStrategy(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	if err := factory.Register("constant", func() coreStrategy { return constantStrategy{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	s, err := factory.Get("constant")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	res, err := s.Compute(context.Background(), 5)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if res.Value.Int64() != 42 {
		t.Errorf("custom strategy value = %s, want 42", res.Value)
	}
}

// TestDefaultFactory_RegisterReplacesCachedInstance verifies that
// re-registering a name evicts the previously cached instance.
func TestDefaultFactory_RegisterReplacesCachedInstance(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	before, err := factory.Get("recursive")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if err := factory.Register("recursive", func() coreStrategy { return constantStrategy{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	after, err := factory.Get("recursive")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if before == after {
		t.Error("Register did not evict the cached instance")
	}
	if after.Name() != "Constant" {
		t.Errorf("replaced strategy name = %q, want %q", after.Name(), "Constant")
	}
}

func TestDefaultFactory_GetAll(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	all := factory.GetAll()
	if len(all) != len(factory.List()) {
		t.Errorf("GetAll returned %d strategies, List has %d names", len(all), len(factory.List()))
	}
	for name, s := range all {
		if s == nil {
			t.Errorf("GetAll returned nil strategy for %q", name)
		}
	}
}

func TestNewStrategy_NilCorePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("NewStrategy(nil) did not panic")
		}
	}()
	NewStrategy(nil)
}
