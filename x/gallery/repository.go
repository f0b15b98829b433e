//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package gallery

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/exp/slices"

	"github.com/totegamma/campsite/core"
)

const collectionName = "gallery_images"

// Repository is the interface for gallery repository
type Repository interface {
	List(ctx context.Context, filter core.GalleryFilter) ([]core.GalleryImage, error)
	Get(ctx context.Context, id string) (core.GalleryImage, error)
	Create(ctx context.Context, image core.GalleryImage) (core.GalleryImage, error)
	Replace(ctx context.Context, image core.GalleryImage) (core.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	collection *mongo.Collection
}

// NewRepository creates a new gallery repository
func NewRepository(db *mongo.Database) Repository {
	return &repository{db.Collection(collectionName)}
}

type document struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	core.GalleryImage `bson:",inline"`
}

func (d document) image() core.GalleryImage {
	image := d.GalleryImage
	image.ID = d.ID.Hex()
	return image
}

// an id that is not an ObjectID can not exist
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.NewErrorNotFound()
	}
	return oid, nil
}

// List returns images by order ascending (unordered last), newest first within the same order
func (r *repository) List(ctx context.Context, filter core.GalleryFilter) ([]core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.List")
	defer span.End()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []document
	if err := cursor.All(ctx, &docs); err != nil {
		span.RecordError(err)
		return nil, err
	}

	images := make([]core.GalleryImage, len(docs))
	for i, doc := range docs {
		images[i] = doc.image()
	}

	slices.SortStableFunc(images, func(a, b core.GalleryImage) int {
		switch {
		case a.Order == nil && b.Order == nil:
			return 0
		case a.Order == nil:
			return 1
		case b.Order == nil:
			return -1
		default:
			return *a.Order - *b.Order
		}
	})

	return images, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.Get")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return core.GalleryImage{}, err
	}

	var doc document
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.GalleryImage{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.GalleryImage{}, err
	}

	return doc.image(), nil
}

func (r *repository) Create(ctx context.Context, image core.GalleryImage) (core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.Create")
	defer span.End()

	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	doc := document{ID: primitive.NewObjectID(), GalleryImage: image}
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		span.RecordError(err)
		return core.GalleryImage{}, err
	}

	return doc.image(), nil
}

// Replace overwrites the whole document
func (r *repository) Replace(ctx context.Context, image core.GalleryImage) (core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.Replace")
	defer span.End()

	oid, err := objectID(image.ID)
	if err != nil {
		return core.GalleryImage{}, err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, document{ID: oid, GalleryImage: image})
	if err != nil {
		span.RecordError(err)
		return core.GalleryImage{}, err
	}
	if result.MatchedCount == 0 {
		return core.GalleryImage{}, core.NewErrorNotFound()
	}

	return image, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.Delete")
	defer span.End()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		span.RecordError(err)
		return err
	}
	if result.DeletedCount == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Repository.Count")
	defer span.End()

	return r.collection.CountDocuments(ctx, bson.M{})
}
