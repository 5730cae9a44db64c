// internal/app/store/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the catalogue API.
const (
	CataloguesCollection = "catalogues"
	DesignsCollection    = "designs"
	MaterialsCollection  = "materials"
)

// IDScheme selects how documents in a collection are addressed.
//
// Catalogues use a store-generated surrogate ObjectID under "_id"; designs
// and materials use an application-assigned natural string under "id". The
// scheme is a property of the collection, decided once at construction,
// never inferred from an entity's runtime shape: the wrong filter shape
// either misses every document or collides distinct natural ids.
type IDScheme int

const (
	// NaturalID filters on the application-assigned "id" string field.
	NaturalID IDScheme = iota
	// SurrogateID filters on the store-generated ObjectID "_id" field.
	SurrogateID
)

var collectionSchemes = map[string]IDScheme{
	CataloguesCollection: SurrogateID,
	DesignsCollection:    NaturalID,
	MaterialsCollection:  NaturalID,
}

// SchemeFor returns the identifier scheme for a collection name. Unknown
// collections default to NaturalID.
func SchemeFor(collection string) IDScheme {
	if scheme, ok := collectionSchemes[collection]; ok {
		return scheme
	}
	return NaturalID
}

// Repository is a generic CRUD layer over one Mongo collection, specialized
// per entity type and parameterized by the collection's identifier scheme.
type Repository[T any] struct {
	c      *mongo.Collection
	scheme IDScheme
}

// New constructs a repository for the named collection using its registered
// identifier scheme.
func New[T any](db *mongo.Database, collection string) *Repository[T] {
	return NewWithScheme[T](db, collection, SchemeFor(collection))
}

// NewWithScheme constructs a repository with an explicit identifier scheme,
// overriding the per-collection policy.
func NewWithScheme[T any](db *mongo.Database, collection string, scheme IDScheme) *Repository[T] {
	return &Repository[T]{c: db.Collection(collection), scheme: scheme}
}

// IDFilter builds the identifier filter for id under this repository's
// scheme. Surrogate ids must be valid 24-hex-digit ObjectID strings.
func (r *Repository[T]) IDFilter(id string) (bson.M, error) {
	if r.scheme == SurrogateID {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid surrogate id %q: %w", id, err)
		}
		return bson.M{"_id": oid}, nil
	}
	return bson.M{"id": id}, nil
}

// GetByID returns the entity with the given id, or nil when no document
// matches.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	filter, err := r.IDFilter(id)
	if err != nil {
		return nil, err
	}

	var entity T
	if err := r.c.FindOne(ctx, filter).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetAll returns every entity in the collection, in store order.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert writes the full entity document.
func (r *Repository[T]) Insert(ctx context.Context, entity T) error {
	_, err := r.c.InsertOne(ctx, entity)
	return err
}

// Update replaces the whole document keyed by the identifier filter.
// Partial-update semantics belong one layer up: services merge before
// calling Update. A missing document is not an error here; services check
// existence first.
func (r *Repository[T]) Update(ctx context.Context, id string, entity T) error {
	filter, err := r.IDFilter(id)
	if err != nil {
		return err
	}

	res := r.c.FindOneAndReplace(ctx, filter, entity)
	if err := res.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

// Delete removes the document keyed by the identifier filter.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	filter, err := r.IDFilter(id)
	if err != nil {
		return err
	}
	_, err = r.c.DeleteOne(ctx, filter)
	return err
}
