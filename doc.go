// Package sparsecs implements a sparse-set Entity-Component store: a
// generational entity table, one sparse set per component type, lifecycle
// signals, multi-component views driven by the smallest participating
// store, and a system scheduler that runs named work as a dependency DAG on
// a work-stealing thread pool.
//
// The World is not safe for concurrent mutation; callers serialize
// Add/Remove/Patch/Destroy/CreateEntity themselves. The thread pool and
// scheduler exist to run systems in parallel between mutation points, not
// to make the World itself thread-safe.
package sparsecs
