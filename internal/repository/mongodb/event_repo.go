package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/domain"
)

// EventsCollection is the collection holding one document per event.
const EventsCollection = "events"

type eventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository returns an EventRepository backed by the events collection
// of the given database.
func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{
		collection: db.Collection(EventsCollection),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	res, err := r.collection.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	e.ID = oid
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	e := &domain.Event{}
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	cur, err := r.collection.Find(ctx, bson.M{}, listOptions())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	e := &domain.Event{}
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": updateDocument(upd, time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Search(ctx context.Context, query string) ([]*domain.Event, error) {
	if strings.TrimSpace(query) == "" {
		return []*domain.Event{}, nil
	}
	cur, err := r.collection.Find(ctx, searchFilter(query), listOptions())
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

// listOptions sorts most recently created first, the order used by both
// ListAll and Search.
func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// searchFilter matches the query as a case-insensitive literal substring of
// title, description, or location. QuoteMeta keeps regex metacharacters in the
// query from altering the match.
func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"location": pattern},
		},
	}
}

// updateDocument builds the $set document for a sparse update: only supplied
// fields are included, and updated_at is always refreshed.
func updateDocument(upd domain.EventUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Organizer != nil {
		set["organizer"] = *upd.Organizer
	}
	if upd.Capacity != nil {
		set["capacity"] = *upd.Capacity
	}
	return set
}

func decodeEvents(ctx context.Context, cur *mongo.Cursor) ([]*domain.Event, error) {
	defer cur.Close(ctx)
	events := make([]*domain.Event, 0)
	for cur.Next(ctx) {
		e := &domain.Event{}
		if err := cur.Decode(e); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, e)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
