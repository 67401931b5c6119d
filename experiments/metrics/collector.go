package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes a single search invocation.
type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Nodes expanded
	Leaves    int // Evaluator calls at cutoff, terminal or deadlock
	TableHits int
	Prunes    int // Alpha-beta cutoffs
}

// MoveMetric ties a search to its move number within a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Winner     string
	HumanScore int
	AIScore    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates counters during one search.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTableHit()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	tableHits atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.tableHits.Store(0)
	c.prunes.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddTableHit() {
	c.tableHits.Add(1)
}

func (c *collector) AddPrune() {
	c.prunes.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     c.depth,
		Duration:  time.Since(c.startTime),
		Nodes:     int(c.nodes.Load()),
		Leaves:    int(c.leaves.Load()),
		TableHits: int(c.tableHits.Load()),
		Prunes:    int(c.prunes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(depth int)        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddTableHit()           {}
func (dummyCollector) AddPrune()              {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
