package content

import (
	"sync"

	"github.com/lumenfall/stardrift/config"
)

// Loader generates system content off the simulation goroutine. The
// scene system invokes LoadSystem on its own goroutine; the finished
// plan is parked here and picked up by the content system on the next
// tick, so world mutation stays on the tick goroutine
type Loader struct {
	cfg   config.WorldConfig
	seed  uint64
	sites []Site

	mu   sync.Mutex
	plan *SystemPlan
}

func NewLoader(cfg config.WorldConfig, seed uint64, sites []Site) *Loader {
	return &Loader{
		cfg:   cfg,
		seed:  seed,
		sites: sites,
	}
}

// LoadSystem generates the plan for index and parks it for pickup
// Safe to call from any goroutine
func (l *Loader) LoadSystem(index int) error {
	starType := 0
	if index >= 0 && index < len(l.sites) {
		starType = l.sites[index].StarType
	}

	plan := GeneratePlan(l.cfg, l.seed, index, starType)

	l.mu.Lock()
	l.plan = &plan
	l.mu.Unlock()
	return nil
}

// TakePlan returns and clears the parked plan, if any
func (l *Loader) TakePlan() (SystemPlan, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.plan == nil {
		return SystemPlan{}, false
	}
	plan := *l.plan
	l.plan = nil
	return plan, true
}
