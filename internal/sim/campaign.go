package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
)

// LevelStats summarizes one completed level.
type LevelStats struct {
	Index   int
	Level   string
	Ticks   uint64
	Deaths  int
	Bubbles int
}

// Campaign plays an ordered level set, swapping to the next level whenever
// the portal countdown completes.
type Campaign struct {
	set    *level.Set
	tuning config.Tuning
	logger *log.Logger

	index    int
	game     *Game
	finished bool
	done     []LevelStats
}

// NewCampaign starts set at level start. A nil logger discards output.
func NewCampaign(set *level.Set, tuning config.Tuning, start int, logger *log.Logger) (*Campaign, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("sim: campaign needs at least one level")
	}
	if start < 0 || start >= set.Len() {
		return nil, fmt.Errorf("sim: start level %d out of range [0, %d)", start, set.Len())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Campaign{set: set, tuning: tuning, logger: logger}
	c.load(start)
	return c, nil
}

func (c *Campaign) load(i int) {
	c.index = i
	lvl := c.set.At(i)
	c.game = NewGame(lvl, c.tuning)
	size := lvl.Size()
	c.logger.Info("level loaded", "index", i, "level", lvl.Name(), "width", size.X, "height", size.Y)
}

// Update advances the current level by seconds of wall time. When the portal
// fires, the next level is loaded and the completed level's stats are
// returned. Particles despawned before the swap are still returned.
func (c *Campaign) Update(seconds float64) ([]Splash, *LevelStats) {
	if c.finished {
		return nil, nil
	}
	despawned := c.game.Update(seconds)
	if !c.game.ReadyToTransition() {
		return despawned, nil
	}

	stats := c.stats()
	c.done = append(c.done, stats)
	c.logger.Info("level complete",
		"index", stats.Index,
		"level", stats.Level,
		"ticks", stats.Ticks,
		"deaths", stats.Deaths,
		"bubbles", stats.Bubbles,
	)

	if c.index+1 >= c.set.Len() {
		c.finished = true
		c.logger.Info("campaign finished", "levels", len(c.done))
		return despawned, &stats
	}
	c.load(c.index + 1)
	return despawned, &stats
}

func (c *Campaign) stats() LevelStats {
	return LevelStats{
		Index:   c.index,
		Level:   c.set.At(c.index).Name(),
		Ticks:   c.game.Ticks(),
		Deaths:  c.game.Player().Deaths,
		Bubbles: c.game.BubblesSpawned(),
	}
}

// SetIntent forwards a key transition to the current level's player.
func (c *Campaign) SetIntent(i core.Intent, held bool) {
	c.game.SetIntent(i, held)
}

// Restart reloads the current level from scratch.
func (c *Campaign) Restart() {
	if c.finished {
		return
	}
	c.logger.Debug("level restarted", "index", c.index)
	c.load(c.index)
}

// Game returns the current level's simulation.
func (c *Campaign) Game() *Game {
	return c.game
}

// Level returns the current level's oracle.
func (c *Campaign) Level() *level.Oracle {
	return c.set.At(c.index)
}

// Index returns the current level index.
func (c *Campaign) Index() int {
	return c.index
}

// Len returns the number of levels in the campaign.
func (c *Campaign) Len() int {
	return c.set.Len()
}

// Finished reports whether the last level's portal has fired.
func (c *Campaign) Finished() bool {
	return c.finished
}

// Completed returns the stats of every level finished so far.
func (c *Campaign) Completed() []LevelStats {
	return append([]LevelStats(nil), c.done...)
}
