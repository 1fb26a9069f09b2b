package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/errs"
	"github.com/sapbattle/core/internal/stats"
)

// HTTPConfig holds the external data-service base URL, adapted from the
// teacher's api.Config.
type HTTPConfig struct {
	BaseURL string
	TTL     time.Duration
}

// cacheEntry pairs a decoded record with the time it was fetched.
type cacheEntry struct {
	record PetRecord
	at     time.Time
}

// HTTPCatalog is a battle.Catalog backed by an external pet/food data
// service, with a TTL-based in-memory cache so repeated summons of the
// same name during one battle don't re-issue a request every time.
// Adapted from the teacher's internal/api.Client (apiGet + TTL cache).
type HTTPCatalog struct {
	client HTTPDoer
	config HTTPConfig

	mu    sync.RWMutex
	cache map[string]cacheEntry

	lowering func(PetRecord) []battle.Effect
}

// HTTPDoer is the subset of *http.Client HTTPCatalog needs, so callers
// may substitute a custom transport in tests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var defaultHTTPClient = &http.Client{Timeout: 8 * time.Second}

// NewHTTPCatalog constructs an HTTPCatalog against baseURL. lowering
// converts a fetched PetRecord's effect_trigger/effect_description pair
// into the closed battle vocabulary — the "external parser" spec.md §6
// keeps outside the core; nil falls back to an effect-less token pet.
func NewHTTPCatalog(baseURL string, ttl time.Duration, lowering func(PetRecord) []battle.Effect) *HTTPCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &HTTPCatalog{
		client:   defaultHTTPClient,
		config:   HTTPConfig{BaseURL: baseURL, TTL: ttl},
		cache:    make(map[string]cacheEntry),
		lowering: lowering,
	}
}

func (c *HTTPCatalog) get(path string, out interface{}) error {
	base := strings.TrimRight(c.config.BaseURL, "/")
	url := base + path
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog service status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPCatalog) fetchPet(name string) (PetRecord, error) {
	c.mu.RLock()
	entry, ok := c.cache[name]
	c.mu.RUnlock()
	if ok && time.Since(entry.at) < c.config.TTL {
		return entry.record, nil
	}

	var rec PetRecord
	if err := c.get("/pets/"+name, &rec); err != nil {
		return PetRecord{}, errs.Wrap(errs.CatalogFailure, name, "pet lookup failed", err)
	}

	c.mu.Lock()
	c.cache[name] = cacheEntry{record: rec, at: time.Now()}
	c.mu.Unlock()
	return rec, nil
}

// SummonPet fetches name's record and assembles a battle.Pet at level.
func (c *HTTPCatalog) SummonPet(name string, level int) (*battle.Pet, error) {
	rec, err := c.fetchPet(name)
	if err != nil {
		return nil, err
	}
	p := battle.NewPet(rec.Name, stats.New(rec.Attack, rec.Health), rec.Tier, level)
	if c.lowering != nil {
		p.Effects = c.lowering(rec)
	}
	return p, nil
}

// RandomPetAtTier fetches the service's tier listing and summons a
// uniformly chosen entry.
func (c *HTTPCatalog) RandomPetAtTier(tier int) (*battle.Pet, error) {
	var names []string
	if err := c.get(fmt.Sprintf("/pets?tier=%d", tier), &names); err != nil {
		return nil, errs.Wrap(errs.CatalogFailure, fmt.Sprintf("tier %d", tier), "tier listing failed", err)
	}
	if len(names) == 0 {
		return nil, errs.New(errs.CatalogFailure, fmt.Sprintf("tier %d", tier), "no pets at tier")
	}
	return c.SummonPet(names[rand.Intn(len(names))], 1)
}

// Food fetches a food record and assembles a battle.Food, reusing the same
// name-keyed ability table buildFood uses for the seed catalog — the
// service's record supplies fresh tier/flags, but the ability vocabulary
// itself still comes from the closed local table (spec.md §6).
func (c *HTTPCatalog) Food(name string) (*battle.Food, error) {
	var rec FoodRecord
	if err := c.get("/foods/"+name, &rec); err != nil {
		return nil, errs.Wrap(errs.CatalogFailure, name, "food lookup failed", err)
	}
	return buildFood(rec), nil
}

// DefaultLowering returns an HTTPCatalog lowering function that looks the
// fetched record's name up in seed's effect table, falling back to an
// effect-less token pet for names seed doesn't carry a builder for — the
// external text-to-effect parser spec.md §6 keeps out of the core, so this
// is the stand-in until one exists.
func DefaultLowering(seed *Memory) func(PetRecord) []battle.Effect {
	return func(rec PetRecord) []battle.Effect {
		tmpl, ok := seed.pets[rec.Name]
		if !ok {
			return nil
		}
		return tmpl.effects(stats.New(rec.Attack, rec.Health))
	}
}
