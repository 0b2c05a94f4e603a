package sim

import (
	"log"
	"sync"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// GameLoop ticks an ECS at a fixed rate. Run paces ticks with a wall-clock
// ticker; Step runs them back to back.
type GameLoop struct {
	ecs      *ecs.ECS
	tickRate int
	ticks    int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex

	// OnTick, if set, runs after every tick with the tick count so far.
	OnTick func(tick int)
}

func NewGameLoop(e *ecs.ECS, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		ecs:      e,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until Stop is called or maxTicks ticks have run.
// maxTicks <= 0 means no limit.
func (g *GameLoop) Run(maxTicks int) {
	g.setRunning(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Orbit loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.setRunning(false)
			log.Println("Orbit loop stopped")
			return
		case <-ticker.C:
			if g.tick() >= maxTicks && maxTicks > 0 {
				g.setRunning(false)
				log.Printf("Orbit loop finished after %d ticks", maxTicks)
				return
			}
		}
	}
}

// Step runs n ticks immediately.
func (g *GameLoop) Step(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

// Stop ends a running Run. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *GameLoop) setRunning(v bool) {
	g.mu.Lock()
	g.running = v
	g.mu.Unlock()
}

func (g *GameLoop) tick() int {
	g.ecs.Update()

	g.mu.Lock()
	g.ticks++
	n := g.ticks
	g.mu.Unlock()

	if g.OnTick != nil {
		g.OnTick(n)
	}
	return n
}
