package metrics

// SearchMetric accumulates work counters across searches: simulations run
// and total moves played out during rollouts.
type SearchMetric struct {
	Simulations  int
	RolloutMoves int
}

type MoveMetric struct {
	Step       int
	Player     int
	DurationMs int64
}

type GameMetric struct {
	StartingPlayer int
	Result         int
	Moves          int
	DurationMs     int64
}

// Collector receives counters from a search algorithm. The searches are
// single-threaded, so plain fields suffice.
type Collector interface {
	AddSimulation()
	AddRolloutMoves(moves int)
	Snapshot() SearchMetric
	Reset()
}

type collector struct {
	metric SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddSimulation() {
	c.metric.Simulations++
}

func (c *collector) AddRolloutMoves(moves int) {
	c.metric.RolloutMoves += moves
}

func (c *collector) Snapshot() SearchMetric {
	return c.metric
}

func (c *collector) Reset() {
	c.metric = SearchMetric{}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that drops everything; the default
// when no metrics are wanted.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) AddSimulation()            {}
func (dummyCollector) AddRolloutMoves(moves int) {}
func (dummyCollector) Snapshot() SearchMetric    { return SearchMetric{} }
func (dummyCollector) Reset()                    {}
