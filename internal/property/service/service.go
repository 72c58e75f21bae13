package service

import (
	"context"
	"errors"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound   = errors.New("property not found")
	ErrValidation = errors.New("missing required fields")
)

// Service defines the listing operations used by the handler layer and the
// propctl CLI. Mutations validate required fields before touching the
// repository, so a rejected request leaves the collection untouched.
type Service interface {
	List(ctx context.Context, typeFacet, search string) ([]*property.Property, error)
	Get(ctx context.Context, id string) (*property.Property, error)
	Create(ctx context.Context, in *property.Input) (*property.Property, error)
	Update(ctx context.Context, id string, in *property.Input) (*property.Property, error)
	SetImage(ctx context.Context, id, image string) (*property.Property, error)
	Delete(ctx context.Context, id string) (*property.Property, error)
}

// New returns a Service on top of any repository implementation.
func New(repo repository.Repository) Service {
	return &svc{repo: repo}
}

// NewMemoryService returns a Service backed by a fresh in-memory repository,
// optionally pre-loaded with the seed dataset.
func NewMemoryService(seeded bool) Service {
	repo := repository.NewMemoryRepo()
	if seeded {
		repo.Load(property.Seed())
	}
	return &svc{repo: repo}
}

// NewMongoService returns a Service backed by a MongoDB collection. Caller
// owns the client lifecycle.
func NewMongoService(col *mongo.Collection) Service {
	return &svc{repo: repository.NewMongoRepo(col)}
}

type svc struct {
	repo repository.Repository
}

func (s *svc) List(ctx context.Context, typeFacet, search string) ([]*property.Property, error) {
	return s.repo.List(ctx, typeFacet, search)
}

func (s *svc) Get(ctx context.Context, id string) (*property.Property, error) {
	p, err := s.repo.Get(ctx, id)
	return p, mapErr(err)
}

func (s *svc) Create(ctx context.Context, in *property.Input) (*property.Property, error) {
	if !in.Valid() {
		return nil, ErrValidation
	}
	p := fromInput(in)
	if p.Image == "" {
		p.Image = property.DefaultImage
	}
	out, err := s.repo.Create(ctx, p)
	return out, mapErr(err)
}

func (s *svc) Update(ctx context.Context, id string, in *property.Input) (*property.Property, error) {
	if !in.Valid() {
		return nil, ErrValidation
	}
	// An omitted image is resolved to the stored one inside the repository,
	// under the same lock as the replace.
	out, err := s.repo.Update(ctx, id, fromInput(in))
	return out, mapErr(err)
}

func (s *svc) SetImage(ctx context.Context, id, image string) (*property.Property, error) {
	if image == "" {
		return nil, ErrValidation
	}
	out, err := s.repo.SetImage(ctx, id, image)
	return out, mapErr(err)
}

func (s *svc) Delete(ctx context.Context, id string) (*property.Property, error) {
	p, err := s.repo.Delete(ctx, id)
	return p, mapErr(err)
}

func fromInput(in *property.Input) *property.Property {
	return &property.Property{
		Name:        in.Name,
		Type:        in.Type,
		Price:       in.Price,
		Location:    in.Location,
		Description: in.Description,
		Image:       in.Image,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Area:        in.Area,
	}
}

func mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
