// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package mongostore is the MongoDB planets.Store.
//
// All planets live in one collection. Documents carry _id (an ObjectID),
// name, climate, terrain and n_appearances; other fields are left untouched
// by every operation. Where several documents match, the one with the
// lowest _id wins.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/planetary/internal/models"
)

// planetDoc is the stored shape of a planet.
type planetDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Climate      string             `bson:"climate"`
	Terrain      string             `bson:"terrain"`
	NAppearances int                `bson:"n_appearances"`
}

func (d *planetDoc) planet() models.Planet {
	return models.Planet{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Climate:      d.Climate,
		Terrain:      d.Terrain,
		NAppearances: d.NAppearances,
	}
}

// oldestFirst orders matches so the earliest inserted document wins.
var oldestFirst = bson.D{{Key: "_id", Value: 1}}

// Store implements planets.Store and planets.FieldRenamer on MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open connects to uri and verifies the connection with a ping. Both steps
// share the connect timeout.
func Open(ctx context.Context, uri, database, collection string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName("planetary"))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// List returns every planet, oldest first.
func (s *Store) List(ctx context.Context) ([]models.Planet, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(oldestFirst))
	if err != nil {
		return nil, fmt.Errorf("find planets: %w", err)
	}

	var docs []planetDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read planets: %w", err)
	}

	planets := make([]models.Planet, 0, len(docs))
	for i := range docs {
		planets = append(planets, docs[i].planet())
	}
	return planets, nil
}

// FindByID returns the planet with the given ID. A malformed ID matches nothing.
func (s *Store) FindByID(ctx context.Context, id string) (models.Planet, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Planet{}, false, nil
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

// FindByName returns the oldest planet with exactly the given name.
func (s *Store) FindByName(ctx context.Context, name string) (models.Planet, bool, error) {
	return s.findOne(ctx, bson.M{"name": name})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (models.Planet, bool, error) {
	var doc planetDoc
	err := s.coll.FindOne(ctx, filter, options.FindOne().SetSort(oldestFirst)).Decode(&doc)
	return result(&doc, err, "find planet")
}

// Insert stores planet and returns its new ID. planet.ID is ignored.
func (s *Store) Insert(ctx context.Context, planet models.Planet) (string, error) {
	res, err := s.coll.InsertOne(ctx, planetDoc{
		Name:         planet.Name,
		Climate:      planet.Climate,
		Terrain:      planet.Terrain,
		NAppearances: planet.NAppearances,
	})
	if err != nil {
		return "", fmt.Errorf("insert planet: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert planet: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// UpdateByID sets name, climate and terrain of the planet with the given ID.
func (s *Store) UpdateByID(ctx context.Context, id string, fields models.PlanetFields) (models.Planet, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Planet{}, false, nil
	}
	return s.updateOne(ctx, bson.M{"_id": oid}, fields)
}

// UpdateByName sets name, climate and terrain of the oldest planet named name.
func (s *Store) UpdateByName(ctx context.Context, name string, fields models.PlanetFields) (models.Planet, bool, error) {
	return s.updateOne(ctx, bson.M{"name": name}, fields)
}

func (s *Store) updateOne(ctx context.Context, filter bson.M, fields models.PlanetFields) (models.Planet, bool, error) {
	update := bson.M{"$set": bson.M{
		"name":    fields.Name,
		"climate": fields.Climate,
		"terrain": fields.Terrain,
	}}
	opts := options.FindOneAndUpdate().
		SetSort(oldestFirst).
		SetReturnDocument(options.After)

	var doc planetDoc
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	return result(&doc, err, "update planet")
}

// DeleteByID removes the planet with the given ID and returns it.
func (s *Store) DeleteByID(ctx context.Context, id string) (models.Planet, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Planet{}, false, nil
	}
	return s.deleteOne(ctx, bson.M{"_id": oid})
}

// DeleteByName removes the oldest planet named name and returns it.
func (s *Store) DeleteByName(ctx context.Context, name string) (models.Planet, bool, error) {
	return s.deleteOne(ctx, bson.M{"name": name})
}

func (s *Store) deleteOne(ctx context.Context, filter bson.M) (models.Planet, bool, error) {
	var doc planetDoc
	err := s.coll.FindOneAndDelete(ctx, filter, options.FindOneAndDelete().SetSort(oldestFirst)).Decode(&doc)
	return result(&doc, err, "delete planet")
}

// RenameFields applies a $rename of renames to every document that has at
// least one of the old fields.
func (s *Store) RenameFields(ctx context.Context, renames map[string]string) (int64, error) {
	if len(renames) == 0 {
		return 0, nil
	}

	rename := bson.M{}
	anyOld := bson.A{}
	for from, to := range renames {
		if from == "_id" || to == "_id" {
			return 0, fmt.Errorf("cannot rename %q", "_id")
		}
		if from == "" || to == "" || from == to {
			return 0, fmt.Errorf("invalid rename %q -> %q", from, to)
		}
		rename[from] = to
		anyOld = append(anyOld, bson.M{from: bson.M{"$exists": true}})
	}

	res, err := s.coll.UpdateMany(ctx, bson.M{"$or": anyOld}, bson.M{"$rename": rename})
	if err != nil {
		return 0, fmt.Errorf("rename fields: %w", err)
	}
	return res.ModifiedCount, nil
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Backend returns "mongo".
func (s *Store) Backend() string {
	return "mongo"
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// result maps mongo.ErrNoDocuments to a miss and wraps other errors with op.
func result(doc *planetDoc, err error, op string) (models.Planet, bool, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Planet{}, false, nil
	}
	if err != nil {
		return models.Planet{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return doc.planet(), true, nil
}
