//go:build !deadlock

// Package syncutil holds the locks used by batches, registries and event
// adapters. Building with -tags deadlock swaps them for go-deadlock's checked
// versions so a lock held past the detector timeout is reported with stacks.
package syncutil

import "sync"

const DeadlockEnabled = false

type (
	Mutex   = sync.Mutex
	RWMutex = sync.RWMutex
)
