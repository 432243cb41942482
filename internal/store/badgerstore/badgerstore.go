// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package badgerstore is an embedded planets.Store backed by BadgerDB.
//
// Each planet is one JSON document under planet:doc:<id>. Documents use the
// same field names as the MongoDB backend, including "_id", so a document
// keeps any field it does not know about across updates. A secondary key
// planet:name:<name>\x00<id> indexes documents by name; when several
// documents share a name, the one with the lowest ID (the oldest) wins.
//
// IDs are MongoDB ObjectID hex strings, which sort by creation time, so a
// prefix scan lists planets in insertion order.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tomtom215/planetary/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	docKeyPrefix  = "planet:doc:"
	nameKeyPrefix = "planet:name:"
	nameSeparator = "\x00"
)

// Document field names, shared with the MongoDB backend.
const (
	fieldID           = "_id"
	fieldName         = "name"
	fieldClimate      = "climate"
	fieldTerrain      = "terrain"
	fieldNAppearances = "n_appearances"
)

// maxConflictRetries bounds retries of a read-modify-write transaction that
// lost a race with a concurrent writer.
const maxConflictRetries = 10

// planetDoc is the known part of a stored document.
type planetDoc struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Climate      string `json:"climate"`
	Terrain      string `json:"terrain"`
	NAppearances int    `json:"n_appearances"`
}

func (d *planetDoc) planet() models.Planet {
	return models.Planet{
		ID:           d.ID,
		Name:         d.Name,
		Climate:      d.Climate,
		Terrain:      d.Terrain,
		NAppearances: d.NAppearances,
	}
}

// Store implements planets.Store and planets.FieldRenamer on BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a BadgerDB database at path. With inMemory set the
// path is ignored and nothing is written to disk.
func Open(path string, inMemory bool) (*Store, error) {
	opts := badger.DefaultOptions(path).WithInMemory(inMemory).WithLogger(nil)
	if inMemory {
		opts = opts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return New(db), nil
}

// New wraps an already open database.
func New(db *badger.DB) *Store {
	return &Store{db: db}
}

func docKey(id string) []byte {
	return []byte(docKeyPrefix + id)
}

func nameKey(name, id string) []byte {
	return []byte(nameKeyPrefix + name + nameSeparator + id)
}

func namePrefix(name string) []byte {
	return []byte(nameKeyPrefix + name + nameSeparator)
}

// validID reports whether id can name a stored document. Malformed IDs
// simply never match.
func validID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// List returns every planet in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	planets := []models.Planet{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(docKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var doc planetDoc
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			planets = append(planets, doc.planet())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

// FindByID returns the planet with the given ID.
func (s *Store) FindByID(ctx context.Context, id string) (models.Planet, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Planet{}, false, err
	}
	if !validID(id) {
		return models.Planet{}, false, nil
	}

	var doc planetDoc
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = getDoc(txn, id, &doc)
		return err
	})
	if err != nil {
		return models.Planet{}, false, err
	}
	return doc.planet(), found, nil
}

// FindByName returns the oldest planet with exactly the given name.
func (s *Store) FindByName(ctx context.Context, name string) (models.Planet, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Planet{}, false, err
	}

	var doc planetDoc
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		id, ok := idForName(txn, name)
		if !ok {
			return nil
		}
		var err error
		found, err = getDoc(txn, id, &doc)
		return err
	})
	if err != nil {
		return models.Planet{}, false, err
	}
	return doc.planet(), found, nil
}

// Insert stores planet under a fresh ID and returns the ID. planet.ID is
// ignored.
func (s *Store) Insert(ctx context.Context, planet models.Planet) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	data, err := json.Marshal(&planetDoc{
		ID:           id,
		Name:         planet.Name,
		Climate:      planet.Climate,
		Terrain:      planet.Terrain,
		NAppearances: planet.NAppearances,
	})
	if err != nil {
		return "", fmt.Errorf("marshal planet: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(docKey(id), data); err != nil {
			return fmt.Errorf("set planet: %w", err)
		}
		if err := txn.Set(nameKey(planet.Name, id), []byte(id)); err != nil {
			return fmt.Errorf("set name index: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateByID sets name, climate and terrain of the planet with the given ID.
func (s *Store) UpdateByID(ctx context.Context, id string, fields models.PlanetFields) (models.Planet, bool, error) {
	if !validID(id) {
		return models.Planet{}, false, ctx.Err()
	}
	return s.modify(ctx, func(*badger.Txn) (string, bool) { return id, true }, func(txn *badger.Txn, id string, raw map[string]json.RawMessage, doc *planetDoc) error {
		return setFields(txn, id, raw, doc, fields)
	})
}

// UpdateByName sets name, climate and terrain of the oldest planet named name.
func (s *Store) UpdateByName(ctx context.Context, name string, fields models.PlanetFields) (models.Planet, bool, error) {
	return s.modify(ctx, func(txn *badger.Txn) (string, bool) { return idForName(txn, name) }, func(txn *badger.Txn, id string, raw map[string]json.RawMessage, doc *planetDoc) error {
		return setFields(txn, id, raw, doc, fields)
	})
}

// DeleteByID removes the planet with the given ID and returns it.
func (s *Store) DeleteByID(ctx context.Context, id string) (models.Planet, bool, error) {
	if !validID(id) {
		return models.Planet{}, false, ctx.Err()
	}
	return s.modify(ctx, func(*badger.Txn) (string, bool) { return id, true }, deleteDoc)
}

// DeleteByName removes the oldest planet named name and returns it.
func (s *Store) DeleteByName(ctx context.Context, name string) (models.Planet, bool, error) {
	return s.modify(ctx, func(txn *badger.Txn) (string, bool) { return idForName(txn, name) }, deleteDoc)
}

// modify runs a read-modify-write of one document. locate picks the target
// inside the transaction; apply changes it and leaves the resulting planet
// in doc. Conflicting concurrent writes are retried.
func (s *Store) modify(
	ctx context.Context,
	locate func(txn *badger.Txn) (string, bool),
	apply func(txn *badger.Txn, id string, raw map[string]json.RawMessage, doc *planetDoc) error,
) (models.Planet, bool, error) {
	var doc planetDoc
	var found bool

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return models.Planet{}, false, err
		}

		doc, found = planetDoc{}, false
		err := s.db.Update(func(txn *badger.Txn) error {
			id, ok := locate(txn)
			if !ok {
				return nil
			}

			raw, err := getRaw(txn, id)
			if err != nil || raw == nil {
				return err
			}
			if err := decodeRaw(raw, &doc); err != nil {
				return fmt.Errorf("decode planet %s: %w", id, err)
			}
			if doc.ID == "" {
				doc.ID = id
			}

			found = true
			return apply(txn, id, raw, &doc)
		})

		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		if err != nil {
			return models.Planet{}, false, err
		}
		return doc.planet(), found, nil
	}
}

// setFields writes the new fields into raw, keeping unknown fields, and
// moves the name index entry when the name changes.
func setFields(txn *badger.Txn, id string, raw map[string]json.RawMessage, doc *planetDoc, fields models.PlanetFields) error {
	oldName := doc.Name
	_, hadName := raw[fieldName]

	for key, val := range map[string]string{
		fieldName:    fields.Name,
		fieldClimate: fields.Climate,
		fieldTerrain: fields.Terrain,
	} {
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		raw[key] = encoded
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal planet: %w", err)
	}
	if err := txn.Set(docKey(id), data); err != nil {
		return fmt.Errorf("set planet: %w", err)
	}

	if !hadName || oldName != fields.Name {
		if hadName {
			if err := txn.Delete(nameKey(oldName, id)); err != nil {
				return fmt.Errorf("delete name index: %w", err)
			}
		}
		if err := txn.Set(nameKey(fields.Name, id), []byte(id)); err != nil {
			return fmt.Errorf("set name index: %w", err)
		}
	}

	doc.Name = fields.Name
	doc.Climate = fields.Climate
	doc.Terrain = fields.Terrain
	return nil
}

// deleteDoc removes the document and its name index entry.
func deleteDoc(txn *badger.Txn, id string, raw map[string]json.RawMessage, doc *planetDoc) error {
	if err := txn.Delete(docKey(id)); err != nil {
		return fmt.Errorf("delete planet: %w", err)
	}
	if _, ok := raw[fieldName]; ok {
		if err := txn.Delete(nameKey(doc.Name, id)); err != nil {
			return fmt.Errorf("delete name index: %w", err)
		}
	}
	return nil
}

// RenameFields renames document fields on every planet, in the manner of
// MongoDB's $rename: a document without the old field is left alone and an
// existing field under the new name is overwritten. The name index is
// rebuilt afterwards since "name" itself may have moved.
func (s *Store) RenameFields(ctx context.Context, renames map[string]string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for from, to := range renames {
		if from == fieldID || to == fieldID {
			return 0, fmt.Errorf("cannot rename %q", fieldID)
		}
		if from == "" || to == "" || from == to {
			return 0, fmt.Errorf("invalid rename %q -> %q", from, to)
		}
	}

	var changed int64
	err := s.db.Update(func(txn *badger.Txn) error {
		changed = 0
		docs, err := scanRaw(txn)
		if err != nil {
			return err
		}

		if err := dropNameIndex(txn); err != nil {
			return err
		}

		for id, raw := range docs {
			modified := false
			for from, to := range renames {
				if val, ok := raw[from]; ok {
					raw[to] = val
					delete(raw, from)
					modified = true
				}
			}

			if modified {
				data, err := json.Marshal(raw)
				if err != nil {
					return fmt.Errorf("marshal planet %s: %w", id, err)
				}
				if err := txn.Set(docKey(id), data); err != nil {
					return fmt.Errorf("set planet %s: %w", id, err)
				}
				changed++
			}

			var name string
			if val, ok := raw[fieldName]; ok && json.Unmarshal(val, &name) == nil {
				if err := txn.Set(nameKey(name, id), []byte(id)); err != nil {
					return fmt.Errorf("set name index: %w", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("rename fields: %w", err)
	}
	return changed, nil
}

// Ping reports whether the database is open.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

// Backend returns "badger".
func (s *Store) Backend() string {
	return "badger"
}

// Close closes the database.
func (s *Store) Close(context.Context) error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// idForName returns the ID of the oldest document indexed under name.
// Entries of longer names that share the prefix (a name containing the
// separator) leave more than one ID after it and are skipped.
func idForName(txn *badger.Txn, name string) (string, bool) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := namePrefix(name)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		id := strings.TrimPrefix(string(it.Item().Key()), string(prefix))
		if validID(id) {
			return id, true
		}
	}
	return "", false
}

// getRaw returns the raw document stored under id, or nil if there is none.
func getRaw(txn *badger.Txn, id string) (map[string]json.RawMessage, error) {
	item, err := txn.Get(docKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get planet %s: %w", id, err)
	}

	var raw map[string]json.RawMessage
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &raw)
	}); err != nil {
		return nil, fmt.Errorf("decode planet %s: %w", id, err)
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	return raw, nil
}

// getDoc decodes the document stored under id into doc.
func getDoc(txn *badger.Txn, id string, doc *planetDoc) (bool, error) {
	raw, err := getRaw(txn, id)
	if err != nil || raw == nil {
		return false, err
	}
	if err := decodeRaw(raw, doc); err != nil {
		return false, fmt.Errorf("decode planet %s: %w", id, err)
	}
	if doc.ID == "" {
		doc.ID = id
	}
	return true, nil
}

// decodeRaw fills doc from the known fields of raw. Fields of the wrong
// type are left at their zero value, as a renamed-away field would be.
func decodeRaw(raw map[string]json.RawMessage, doc *planetDoc) error {
	targets := map[string]interface{}{
		fieldID:           &doc.ID,
		fieldName:         &doc.Name,
		fieldClimate:      &doc.Climate,
		fieldTerrain:      &doc.Terrain,
		fieldNAppearances: &doc.NAppearances,
	}
	for key, target := range targets {
		val, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(val, target); err != nil {
			if key == fieldID {
				return err
			}
		}
	}
	return nil
}

// scanRaw loads every document keyed by ID.
func scanRaw(txn *badger.Txn) (map[string]map[string]json.RawMessage, error) {
	docs := make(map[string]map[string]json.RawMessage)

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(docKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		id := strings.TrimPrefix(string(item.Key()), docKeyPrefix)

		var raw map[string]json.RawMessage
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &raw)
		}); err != nil {
			return nil, fmt.Errorf("decode planet %s: %w", id, err)
		}
		if raw == nil {
			raw = map[string]json.RawMessage{}
		}
		docs[id] = raw
	}
	return docs, nil
}

// dropNameIndex deletes every name index entry.
func dropNameIndex(txn *badger.Txn) error {
	var keys [][]byte

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	prefix := []byte(nameKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete name index: %w", err)
		}
	}
	return nil
}
