package client

import (
	"context"
	"errors"
	"sync"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
)

// Cache mirrors the server's collection for a UI: a disposable local copy of
// the records plus the request lifecycle state (loading flag, last error)
// and the selection state the views read. The server copy is authoritative;
// Refresh replaces the whole cache, while a successful create prepends the
// returned record without a refetch.
//
// Refreshes may overlap. Each carries a sequence number and only the most
// recently issued one is allowed to apply, so a slow early response can
// never clobber a later result.
type Cache struct {
	mu    sync.Mutex
	api   *API
	prefs *Prefs

	records  []*property.Property
	selected *property.Property

	searchTerm   string
	selectedType string

	loading  bool
	errMsg   string
	formOpen bool

	fetchSeq uint64

	darkMode bool
}

// NewCache builds a cache over the given API. prefs may be nil; when set,
// the persisted display-mode preference is loaded from it.
func NewCache(api *API, prefs *Prefs) *Cache {
	c := &Cache{
		api:          api,
		prefs:        prefs,
		selectedType: property.FacetAll,
	}
	if prefs != nil {
		c.darkMode = prefs.DarkMode()
	}
	return c
}

// Refresh fetches the full collection and replaces the cache with it.
// Records filtered out by the current search or facet are still cached;
// Filtered derives the visible view locally.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	list, err := c.api.ListProperties(ctx, "", "")

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		// a newer refresh was issued; drop this result, stale either way
		return nil
	}
	c.loading = false
	if err != nil {
		c.errMsg = errMessage(err, "Failed to fetch properties")
		return err
	}
	c.records = list
	return nil
}

// Add creates a listing and, on success, prepends the stored record to the
// cache and closes the creation form.
func (c *Cache) Add(ctx context.Context, in *property.Input) (*property.Property, error) {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	p, err := c.api.CreateProperty(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = errMessage(err, "Failed to add property")
		return nil, err
	}
	c.records = append([]*property.Property{p}, c.records...)
	c.formOpen = false
	return p, nil
}

// Filtered re-runs the shared query filter against the local cache. It uses
// the identical predicate as the server-side list path, so between fetches
// the local view matches what the server would return for the same inputs.
func (c *Cache) Filtered() []*property.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	return property.Filter(c.records, c.selectedType, c.searchTerm)
}

// Records returns the unfiltered cached collection.
func (c *Cache) Records() []*property.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*property.Property, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Cache) SetSearchTerm(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = s
}

func (c *Cache) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

func (c *Cache) SetSelectedType(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t == "" {
		t = property.FacetAll
	}
	c.selectedType = t
}

func (c *Cache) SelectedType() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedType
}

// Select marks a record for detail display; nil clears the selection.
func (c *Cache) Select(p *property.Property) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = p
}

func (c *Cache) Selected() *property.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *Cache) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the human-readable message from the last failed request, or
// "" after a success or a fresh request.
func (c *Cache) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Cache) ToggleForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = !c.formOpen
}

func (c *Cache) FormOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formOpen
}

// ToggleDarkMode flips the display-mode preference and persists it when a
// prefs store is attached.
func (c *Cache) ToggleDarkMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.darkMode = !c.darkMode
	if c.prefs != nil {
		_ = c.prefs.SetDarkMode(c.darkMode)
	}
}

func (c *Cache) DarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.darkMode
}

// errMessage prefers the server-provided error field; transport faults get
// the generic retryable message.
func errMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
