package sparsecs

import (
	"sync"

	"go.uber.org/zap"
)

// systemNode is one named entry in the dependency graph: the function to
// run, the names it waits on, and the names that wait on it (populated as
// later AddNamedSystem calls reference this node, or as this node's own
// dependency list is scanned against already-registered nodes).
type systemNode struct {
	name         string
	fn           func()
	dependencies []string
	dependents   []string
}

// SystemScheduler runs systems either as a flat unordered/ordered list or
// as a named dependency DAG, per spec.md §4.6-4.7. A SystemScheduler owns
// its ThreadPool; RunParallel/RunGraph/Frame all execute through it.
type SystemScheduler struct {
	flat []func()

	graph      map[string]*systemNode
	order      []string // registration order, for stable layer ordering in RebuildGraph
	batches    [][]string
	graphDirty bool

	pool *ThreadPool
	log  *zap.Logger
}

// NewSystemScheduler creates a scheduler backed by a dedicated ThreadPool
// sized by cfg.
func NewSystemScheduler(cfg ThreadPoolConfig, log *zap.Logger) *SystemScheduler {
	return &SystemScheduler{
		graph:      make(map[string]*systemNode),
		graphDirty: true,
		pool:       NewThreadPool(cfg.Workers, cfg.DequeCapacity, cfg.IdleWait),
		log:        orNop(log),
	}
}

// Shutdown stops the scheduler's ThreadPool, joining its workers.
func (s *SystemScheduler) Shutdown() {
	s.pool.Shutdown()
}

// AddSystem appends fn to the flat, unordered/ordered system list consumed
// by RunSequential and RunParallel.
func (s *SystemScheduler) AddSystem(fn func()) {
	s.flat = append(s.flat, fn)
}

// AddNamedSystem registers fn under name with the given dependency names,
// for use by RunGraph/RebuildGraph. Dependencies may reference names that
// haven't been registered yet; they're resolved when RebuildGraph runs, at
// which point a reference to an unknown name is a topology error. Calling
// this marks the graph dirty, so the next RunGraph rebuilds it.
func (s *SystemScheduler) AddNamedSystem(name string, fn func(), dependencies ...string) {
	node := &systemNode{name: name, fn: fn, dependencies: append([]string{}, dependencies...)}
	s.graph[name] = node
	s.order = append(s.order, name)
	for existingName, existing := range s.graph {
		if existingName == name {
			continue
		}
		for _, dep := range existing.dependencies {
			if dep == name {
				node.dependents = append(node.dependents, existingName)
			}
		}
	}
	for _, dep := range node.dependencies {
		if depNode, ok := s.graph[dep]; ok {
			depNode.dependents = append(depNode.dependents, name)
		}
	}
	s.graphDirty = true
}

// RunSequential runs every flat system on the calling goroutine, in
// registration order.
func (s *SystemScheduler) RunSequential() {
	for _, fn := range s.flat {
		fn()
	}
}

// RunParallel submits every flat system to the ThreadPool and blocks until
// all have completed. Systems are assumed independent; spec.md §4.6 leaves
// ordering among them unspecified.
func (s *SystemScheduler) RunParallel() {
	s.Frame(s.flat...)
}

// Frame submits every fn to the ThreadPool and blocks until all have
// completed, matching the source's latch-based Frame. Unlike RunGraph it
// applies no dependency ordering — every fn runs concurrently.
func (s *SystemScheduler) Frame(fns ...func()) {
	if len(fns) == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		fn := fn
		if err := s.pool.Submit(func() {
			defer wg.Done()
			fn()
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()
}

// RunGraph executes the named system DAG, rebuilding its batched layers
// first if dirty, then running each layer's systems concurrently through
// Frame with a barrier between layers so a system never starts before every
// dependency in an earlier layer has finished. Returns
// ErrCycleOrMissingDependency if the graph doesn't form a DAG over the
// registered names.
func (s *SystemScheduler) RunGraph() error {
	if s.graphDirty {
		if err := s.RebuildGraph(); err != nil {
			return err
		}
	}
	for _, layer := range s.batches {
		fns := make([]func(), len(layer))
		for i, name := range layer {
			fns[i] = s.graph[name].fn
		}
		s.Frame(fns...)
	}
	return nil
}

// RebuildGraph recomputes the batched layering via Kahn's algorithm: nodes
// with zero remaining indegree form a layer, their dependents' indegree is
// decremented, and the process repeats. If fewer nodes are emitted than
// exist in the graph, some remainder has a cycle or depends on a name that
// was never registered.
func (s *SystemScheduler) RebuildGraph() error {
	indegree := make(map[string]int, len(s.graph))
	for name, node := range s.graph {
		for _, dep := range node.dependencies {
			if _, ok := s.graph[dep]; !ok {
				return ErrCycleOrMissingDependency
			}
			indegree[name]++
		}
	}

	var batches [][]string
	remaining := len(s.graph)
	visited := make(map[string]bool, len(s.graph))
	for remaining > 0 {
		var layer []string
		for _, name := range s.order {
			if visited[name] {
				continue
			}
			if indegree[name] == 0 {
				layer = append(layer, name)
			}
		}
		if len(layer) == 0 {
			return ErrCycleOrMissingDependency
		}
		for _, name := range layer {
			visited[name] = true
			remaining--
			for _, dependent := range s.graph[name].dependents {
				indegree[dependent]--
			}
		}
		batches = append(batches, layer)
	}

	s.batches = batches
	s.graphDirty = false
	s.log.Debug("rebuilt system graph", zap.Int("layers", len(batches)))
	return nil
}
