package pokedex

import (
	"errors"
	"fmt"
	"time"

	"github.com/pfrederiksen/pokedata/internal/config"
	"github.com/pfrederiksen/pokedata/internal/logger"
	"github.com/pfrederiksen/pokedata/internal/pokeapi"
	"github.com/pfrederiksen/pokedata/internal/pokemon"
	"github.com/pfrederiksen/pokedata/internal/table"
)

// Fetcher retrieves one shaped Pokémon record.
type Fetcher interface {
	FetchPokemon(id int) (pokemon.Record, error)
}

// GroupResult is the collected table for one group plus its tallies.
type GroupResult struct {
	Group        config.Group
	Table        *table.Table
	Attempted    int
	FetchFailed  int
	ShapeFailed  int
	StatsMissing int
}

// Written returns the number of records in the group's table.
func (r GroupResult) Written() int {
	return r.Table.Len()
}

// Failed returns the number of skipped IDs.
func (r GroupResult) Failed() int {
	return r.FetchFailed + r.ShapeFailed
}

// Collector drives fetches for a list of groups.
type Collector struct {
	fetcher Fetcher
	delay   time.Duration
	sleep   func(time.Duration)
	now     func() time.Time
	log     *logger.Logger
	metrics *logger.Metrics
}

// NewCollector creates a collector that pauses for delay after every fetch.
// A nil log or metrics is replaced by a no-op logger or a private tracker.
func NewCollector(fetcher Fetcher, delay time.Duration, log *logger.Logger, metrics *logger.Metrics) *Collector {
	if log == nil {
		log = logger.Discard()
	}
	if metrics == nil {
		metrics = logger.NewMetrics()
	}
	return &Collector{
		fetcher: fetcher,
		delay:   delay,
		sleep:   time.Sleep,
		now:     time.Now,
		log:     log,
		metrics: metrics,
	}
}

// Collect processes groups in order and returns one result per group. Fetch
// and shape failures are skipped per ID; an error is returned only when a
// record cannot be added to its group's table, which stops the run.
func (c *Collector) Collect(groups []config.Group) ([]GroupResult, error) {
	results := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		result, err := c.CollectGroup(g)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// CollectGroup fetches every ID in g and accumulates the shaped records.
func (c *Collector) CollectGroup(g config.Group) (GroupResult, error) {
	result := GroupResult{
		Group: g,
		Table: table.New(pokemon.Columns()...),
	}

	c.log.Info("Fetching group", logger.Fields{
		"group": g.Name,
		"first": g.First,
		"last":  g.Last,
	})

	for _, id := range g.IDs() {
		result.Attempted++
		err := c.collectOne(g, id, &result)
		c.sleep(c.delay)
		if err != nil {
			return result, err
		}
	}

	c.log.Info("Group complete", logger.Fields{
		"group":   g.Name,
		"written": result.Written(),
		"failed":  result.Failed(),
	})

	return result, nil
}

func (c *Collector) collectOne(g config.Group, id int, result *GroupResult) error {
	start := c.now()
	rec, err := c.fetcher.FetchPokemon(id)
	c.metrics.RecordTiming(logger.TimingFetch, c.now().Sub(start))

	if err != nil {
		fields := logger.Fields{"group": g.Name, "id": id, "error": err.Error()}

		var shapeErr *pokeapi.ShapeError
		var statusErr *pokeapi.StatusError
		switch {
		case errors.As(err, &shapeErr):
			result.ShapeFailed++
			c.metrics.IncrCounter(logger.CounterShapeFailed)
			fields["field"] = shapeErr.Field
			c.log.Warn("Pokemon payload malformed, skipping", fields)
		case errors.As(err, &statusErr):
			result.FetchFailed++
			c.metrics.IncrCounter(logger.CounterFetchFailed)
			fields["status"] = statusErr.StatusCode
			c.log.Warn("Pokemon fetch failed, skipping", fields)
		default:
			result.FetchFailed++
			c.metrics.IncrCounter(logger.CounterFetchFailed)
			c.log.Warn("Pokemon fetch failed, skipping", fields)
		}
		return nil
	}

	if missing := rec.MissingStats(); len(missing) > 0 {
		result.StatsMissing++
		c.metrics.IncrCounter(logger.CounterStatsMissing)
		c.log.Warn("Pokemon missing stats, leaving cells empty", logger.Fields{
			"group":   g.Name,
			"id":      id,
			"missing": missing,
		})
	}

	if err := result.Table.Append(rec.Values()); err != nil {
		return fmt.Errorf("adding pokemon %d to %s: %w", id, g, err)
	}
	c.metrics.IncrCounter(logger.CounterFetched)
	c.log.Debug("Fetched pokemon", logger.Fields{"group": g.Name, "id": id, "name": rec.Name})
	return nil
}
