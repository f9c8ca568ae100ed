package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"shelterapi/internal/model"
	"shelterapi/internal/repository"
)

// Collection is the subset of *mongo.Collection the repository uses.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Pinger reports store reachability. *mongo.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

var _ Collection = (*mongo.Collection)(nil)

// AnimalMongo is a MongoDB implementation of repository.AnimalRepository.
// It holds a single collection handle and contains no business logic.
type AnimalMongo struct {
	coll   Collection
	pinger Pinger
	log    *zap.Logger
}

// NewAnimalMongo creates a new AnimalMongo repository. pinger may be nil, in which
// case Ping always succeeds.
func NewAnimalMongo(coll Collection, pinger Pinger, log *zap.Logger) *AnimalMongo {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnimalMongo{coll: coll, pinger: pinger, log: log.Named("animals")}
}

var _ repository.AnimalRepository = (*AnimalMongo)(nil)

// Create inserts a single document.
func (r *AnimalMongo) Create(ctx context.Context, rec model.Record) (bool, error) {
	if len(rec) == 0 {
		return false, fmt.Errorf("%w: nothing to insert, record is empty", repository.ErrInvalidArgument)
	}
	_, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return false, nil
		}
		r.log.Error("create failed", zap.Error(err))
		return false, fmt.Errorf("%w: create: %w", repository.ErrStoreFailure, err)
	}
	return true, nil
}

// Read runs a find with optional projection and limit.
func (r *AnimalMongo) Read(ctx context.Context, filter model.Filter, opts repository.ReadOptions) ([]model.Record, error) {
	out, err := r.find(ctx, filter, opts)
	if err != nil {
		r.log.Error("read failed", zap.Error(err), zap.Any("filter", filter))
		return []model.Record{}, fmt.Errorf("%w: read: %w", repository.ErrStoreFailure, err)
	}
	return out, nil
}

// ReadAll reads every document up to limit.
func (r *AnimalMongo) ReadAll(ctx context.Context, projection model.Projection, limit int64) ([]model.Record, error) {
	if limit <= 0 {
		limit = repository.DefaultReadAllLimit
	}
	out, err := r.find(ctx, nil, repository.ReadOptions{Projection: projection, Limit: limit})
	if err != nil {
		r.log.Error("read all failed", zap.Error(err), zap.Int64("limit", limit))
		return []model.Record{}, fmt.Errorf("%w: read all: %w", repository.ErrStoreFailure, err)
	}
	return out, nil
}

func (r *AnimalMongo) find(ctx context.Context, filter model.Filter, opts repository.ReadOptions) ([]model.Record, error) {
	findOpts := options.Find()
	if len(opts.Projection) > 0 {
		findOpts.SetProjection(opts.Projection)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := r.coll.Find(ctx, filterOrAll(filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Record, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies {"$set": values} to every matching document.
func (r *AnimalMongo) Update(ctx context.Context, filter model.Filter, values model.Record) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: nothing to update, values are empty", repository.ErrInvalidArgument)
	}
	res, err := r.coll.UpdateMany(ctx, filterOrAll(filter), bson.M{"$set": values})
	if err != nil {
		r.log.Error("update failed", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("%w: update: %w", repository.ErrStoreFailure, err)
	}
	return res.ModifiedCount, nil
}

// Delete removes every matching document.
func (r *AnimalMongo) Delete(ctx context.Context, filter model.Filter) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, filterOrAll(filter))
	if err != nil {
		r.log.Error("delete failed", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("%w: delete: %w", repository.ErrStoreFailure, err)
	}
	return res.DeletedCount, nil
}

// Ping verifies the primary is reachable.
func (r *AnimalMongo) Ping(ctx context.Context) error {
	if r.pinger == nil {
		return nil
	}
	if err := r.pinger.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: ping: %w", repository.ErrStoreFailure, err)
	}
	return nil
}

// filterOrAll turns a nil filter into an empty document; the driver rejects nil.
func filterOrAll(f model.Filter) model.Filter {
	if f == nil {
		return model.Filter{}
	}
	return f
}
