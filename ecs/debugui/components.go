package debugui

import (
	"github.com/plus3/microecs/ecs"
)

// EntityBrowser is a windowed, filterable list over a caller-supplied entity
// slice. Selecting a row feeds the component inspector.
type EntityBrowser struct {
	cache              *entityBrowserCache
	selected           *ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspector renders and edits the components of a selected entity
// through reflection.
type ComponentInspector struct {
	cache *reflectionCache
}

// PerformanceStats renders frame timing history and per-system execution
// counters.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
