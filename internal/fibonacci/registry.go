package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// StrategyFactory is an interface for creating Strategy instances.
// It allows for flexible strategy instantiation and registration,
// enabling dependency injection and easier testing.
type StrategyFactory interface {
	// Create creates a new Strategy instance by name.
	// Returns an error if the strategy type is not registered.
	Create(name string) (Strategy, error)

	// Get returns an existing Strategy instance by name.
	// Returns an error if the strategy type is not registered.
	Get(name string) (Strategy, error)

	// List returns a sorted list of registered strategy names.
	List() []string

	// Register adds a new strategy type to the factory.
	Register(name string, creator func() coreStrategy) error

	// GetAll returns a map of all registered strategies.
	GetAll() map[string]Strategy
}

// DefaultFactory is the default implementation of StrategyFactory.
// It maintains a thread-safe registry of strategy creators and
// caches Strategy instances for reuse.
type DefaultFactory struct {
	mu         sync.RWMutex
	creators   map[string]func() coreStrategy
	strategies map[string]Strategy
}

// NewDefaultFactory creates a new DefaultFactory with the standard
// Fibonacci strategies pre-registered.
//
// Pre-registered strategies:
//   - "recursive": naive double recursion (O(φⁿ), n ≤ 40)
//   - "memoization": memoized recursion (O(n) time and space, n ≤ 1995)
//   - "dynamic": iterative DP (O(n) time, O(1) space, n ≤ 20,000,000)
//   - "closed-form": Binet's formula (O(log n), approximate, n ≤ 604)
//
// Returns:
//   - *DefaultFactory: A new factory with the default strategies registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:   make(map[string]func() coreStrategy),
		strategies: make(map[string]Strategy),
	}

	// Register the default strategies
	_ = f.Register("recursive", func() coreStrategy { return recursiveStrategy{} })
	_ = f.Register("memoization", func() coreStrategy { return memoizationStrategy{} })
	_ = f.Register("dynamic", func() coreStrategy { return dynamicStrategy{} })
	_ = f.Register("closed-form", func() coreStrategy { return closedFormStrategy{} })

	return f
}

// Register adds a new strategy type to the factory.
// The creator function is called lazily when the strategy is first requested.
// If a strategy with the same name already exists, it will be replaced.
//
// Parameters:
//   - name: The unique identifier for the strategy type.
//   - creator: A function that creates a new coreStrategy instance.
func (f *DefaultFactory) Register(name string, creator func() coreStrategy) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear cached strategy if it exists, so it will be recreated with the new creator
	delete(f.strategies, name)
	return nil
}

// Create creates a new Strategy instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
//
// Parameters:
//   - name: The name of the strategy type to create.
//
// Returns:
//   - Strategy: A new Strategy instance.
//   - error: An error if the strategy type is not registered.
func (f *DefaultFactory) Create(name string) (Strategy, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return NewStrategy(creator()), nil
}

// Get returns a Strategy instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
//
// Parameters:
//   - name: The name of the strategy to retrieve.
//
// Returns:
//   - Strategy: The Strategy instance.
//   - error: An error if the strategy type is not registered.
func (f *DefaultFactory) Get(name string) (Strategy, error) {
	// Check cache first with read lock
	f.mu.RLock()
	if s, exists := f.strategies[name]; exists {
		f.mu.RUnlock()
		return s, nil
	}
	f.mu.RUnlock()

	// Create new strategy with write lock
	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if s, exists := f.strategies[name]; exists {
		return s, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}

	s := NewStrategy(creator())
	f.strategies[name] = s
	return s, nil
}

// List returns a sorted list of all registered strategy names.
// The list is sorted alphabetically for consistent ordering.
//
// Returns:
//   - []string: A sorted slice of strategy names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered strategies.
// This method lazily initializes all strategies that haven't been
// created yet.
//
// Returns:
//   - map[string]Strategy: A map of strategy names to Strategy instances.
func (f *DefaultFactory) GetAll() map[string]Strategy {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Ensure all strategies are initialized
	for name, creator := range f.creators {
		if _, exists := f.strategies[name]; !exists {
			f.strategies[name] = NewStrategy(creator())
		}
	}

	// Return a copy to prevent external modifications
	result := make(map[string]Strategy, len(f.strategies))
	for name, s := range f.strategies {
		result[name] = s
	}
	return result
}

// MustGet is like Get but panics if the strategy is not found.
// This is useful in initialization code where missing strategies
// should be considered a programming error.
//
// Parameters:
//   - name: The name of the strategy to retrieve.
//
// Returns:
//   - Strategy: The Strategy instance.
//
// Panics:
//   - If the strategy type is not registered.
func (f *DefaultFactory) MustGet(name string) Strategy {
	s, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required strategy not found: %s", name))
	}
	return s
}

// Has checks if a strategy with the given name is registered.
//
// Parameters:
//   - name: The name of the strategy to check.
//
// Returns:
//   - bool: true if the strategy is registered, false otherwise.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
// This is a convenience for applications that don't need
// multiple factory instances.
//
// Returns:
//   - *DefaultFactory: The global factory instance.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterStrategy registers a strategy in the global factory.
// This is a convenience function for adding custom strategies.
//
// Parameters:
//   - name: The unique identifier for the strategy type.
//   - creator: A function that creates a new coreStrategy instance.
func RegisterStrategy(name string, creator func() coreStrategy) error {
	return globalFactory.Register(name, creator)
}
