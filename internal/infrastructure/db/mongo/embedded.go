package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schooldesk/school-api/internal/core/domain"
)

// embedded manages one array of sub-records inside a school document. Items
// are matched on their "_id" field.
type embedded[T any] struct {
	col      *mongo.Collection
	field    string
	notFound error
}

func (e embedded[T]) add(ctx context.Context, schoolID string, item T) error {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := e.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{e.field: item}})
	if err != nil {
		return fmt.Errorf("push %s: %w", e.field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSchoolNotFound
	}
	return nil
}

func (e embedded[T]) list(ctx context.Context, schoolID string) ([]T, error) {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return nil, domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{e.field: 1})
	raw, err := e.col.FindOne(ctx, bson.M{"_id": oid}, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("list %s: %w", e.field, err)
	}
	return e.decode(raw)
}

func (e embedded[T]) find(ctx context.Context, schoolID, itemID string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return nil, domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, e.field + "._id": itemID}
	opts := options.FindOne().SetProjection(bson.M{e.field + ".$": 1})
	raw, err := e.col.FindOne(ctx, filter, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.notFound
		}
		return nil, fmt.Errorf("find %s: %w", e.field, err)
	}

	items, err := e.decode(raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, e.notFound
	}
	return &items[0], nil
}

func (e embedded[T]) replace(ctx context.Context, schoolID, itemID string, item T) error {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, e.field + "._id": itemID}
	res, err := e.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{e.field + ".$": item}})
	if err != nil {
		return fmt.Errorf("replace %s: %w", e.field, err)
	}
	if res.MatchedCount == 0 {
		return e.notFound
	}
	return nil
}

func (e embedded[T]) remove(ctx context.Context, schoolID, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return domain.ErrSchoolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := e.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{e.field: bson.M{"_id": itemID}}})
	if err != nil {
		return fmt.Errorf("pull %s: %w", e.field, err)
	}
	if res.ModifiedCount == 0 {
		return e.notFound
	}
	return nil
}

// decode reads the array field out of a projected school document. A missing
// field is an empty list.
func (e embedded[T]) decode(raw bson.Raw) ([]T, error) {
	val := raw.Lookup(e.field)
	if val.Value == nil {
		return []T{}, nil
	}

	items := []T{}
	if err := val.Unmarshal(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.field, err)
	}
	return items, nil
}
