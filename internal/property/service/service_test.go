package service

import (
	"context"
	"testing"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
	"github.com/stretchr/testify/require"
)

func validInput() *property.Input {
	return &property.Input{
		Name:        "Test",
		Type:        "House",
		Price:       property.NumericPrice(100000),
		Location:    "X",
		Description: "Y",
	}
}

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(false)

	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())
	require.Equal(t, property.DefaultImage, p.Image)
	require.False(t, p.Bedrooms.Set)
	require.False(t, p.Bathrooms.Set)
	require.False(t, p.Area.Set)

	p2, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotEqual(t, p.ID, p2.ID)
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(false)

	breakers := map[string]func(*property.Input){
		"name":        func(in *property.Input) { in.Name = "" },
		"type":        func(in *property.Input) { in.Type = "" },
		"price":       func(in *property.Input) { in.Price = property.Price{} },
		"location":    func(in *property.Input) { in.Location = "" },
		"description": func(in *property.Input) { in.Description = "" },
	}
	for field, brk := range breakers {
		in := validInput()
		brk(in)
		_, err := svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrValidation, "missing %s", field)
	}

	// rejected creates leave the collection untouched
	list, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateValidatesAndPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(false)

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	bad := validInput()
	bad.Description = ""
	_, err = svc.Update(ctx, created.ID, bad)
	require.ErrorIs(t, err, ErrValidation)

	// the failed update must not have changed anything
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Y", got.Description)

	good := validInput()
	good.Name = "Updated"
	good.Price = property.TextPrice("$120k")
	updated, err := svc.Update(ctx, created.ID, good)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "Updated", updated.Name)

	_, err = svc.Update(ctx, "missing", good)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(true)

	_, err := svc.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)

	deleted, err := svc.Delete(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, "Luxury Villa with Pool", deleted.Name)

	_, err = svc.Delete(ctx, "2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetImage(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(true)

	p, err := svc.SetImage(ctx, "1", "https://example.com/p.jpg")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/p.jpg", p.Image)

	_, err = svc.SetImage(ctx, "1", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetImage(ctx, "missing", "https://example.com/p.jpg")
	require.ErrorIs(t, err, ErrNotFound)
}
