package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
)

var (
	ErrNotFound = errors.New("property not found")
)

// Repository is the persistence contract shared by the in-memory and Mongo
// implementations. List applies the shared query filter; mutations return
// the affected record so handlers can echo it back.
type Repository interface {
	List(ctx context.Context, typeFacet, search string) ([]*property.Property, error)
	Get(ctx context.Context, id string) (*property.Property, error)
	Create(ctx context.Context, p *property.Property) (*property.Property, error)
	Update(ctx context.Context, id string, p *property.Property) (*property.Property, error)
	SetImage(ctx context.Context, id, image string) (*property.Property, error)
	Delete(ctx context.Context, id string) (*property.Property, error)
}

// MemoryRepo holds the listings as an ordered slice, newest first: Create
// prepends, everything else preserves insertion order. All state is lost on
// restart. Callers only ever see copies of the stored records.
type MemoryRepo struct {
	mu   sync.RWMutex
	list []*property.Property
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Load replaces the whole collection, preserving the given order. Used to
// install the seed dataset at startup.
func (m *MemoryRepo) Load(list []*property.Property) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = make([]*property.Property, 0, len(list))
	for _, p := range list {
		cp := *p
		m.list = append(m.list, &cp)
	}
}

func (m *MemoryRepo) List(ctx context.Context, typeFacet, search string) ([]*property.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*property.Property, 0, len(m.list))
	for _, p := range property.Filter(m.list, typeFacet, search) {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*property.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := m.find(id)
	if p == nil {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Create(ctx context.Context, p *property.Property) (*property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	if cp.ID == "" {
		cp.ID = newID()
	}
	cp.CreatedAt = time.Now().UTC()
	m.list = append([]*property.Property{&cp}, m.list...)
	out := cp
	return &out, nil
}

// Update replaces every editable field; id and createdAt are kept, and an
// empty incoming image falls back to the stored one.
func (m *MemoryRepo) Update(ctx context.Context, id string, p *property.Property) (*property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.find(id)
	if cur == nil {
		return nil, ErrNotFound
	}
	next := *p
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	if next.Image == "" {
		next.Image = cur.Image
	}
	*cur = next
	cp := next
	return &cp, nil
}

func (m *MemoryRepo) SetImage(ctx context.Context, id, image string) (*property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.find(id)
	if cur == nil {
		return nil, ErrNotFound
	}
	cur.Image = image
	cp := *cur
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) (*property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.list {
		if p.ID == id {
			cp := *p
			m.list = append(m.list[:i], m.list[i+1:]...)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// find returns the stored record without copying; callers hold the lock.
func (m *MemoryRepo) find(id string) *property.Property {
	for _, p := range m.list {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// newID is unique enough within a process lifetime; ids never collide as
// long as two creations don't land on the same nanosecond.
func newID() string {
	return fmt.Sprintf("prop_%d", time.Now().UnixNano())
}
