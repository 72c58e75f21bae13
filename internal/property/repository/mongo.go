package repository

import (
	"context"
	"time"

	"github.com/homehaven/homehaven/backend/go-services/internal/property"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo is the Mongo-backed twin of MemoryRepo. Listings are keyed by
// the same string ids and ordered newest first via createdAt. Filtering is
// done in Go with the shared property.Filter so both repositories and the
// client-side re-filter agree exactly.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context, typeFacet, search string) ([]*property.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	all := []*property.Property{}
	for cur.Next(ctx) {
		var p property.Property
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		all = append(all, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return property.Filter(all, typeFacet, search), nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*property.Property, error) {
	var p property.Property
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Create(ctx context.Context, p *property.Property) (*property.Property, error) {
	cp := *p
	if cp.ID == "" {
		cp.ID = newID()
	}
	cp.CreatedAt = time.Now().UTC()
	if _, err := m.col.InsertOne(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (m *MongoRepo) Update(ctx context.Context, id string, p *property.Property) (*property.Property, error) {
	cur, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *p
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	if next.Image == "" {
		next.Image = cur.Image
	}
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": id}, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (m *MongoRepo) SetImage(ctx context.Context, id, image string) (*property.Property, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p property.Property
	err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"image": image}}, opts).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) (*property.Property, error) {
	var p property.Property
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
