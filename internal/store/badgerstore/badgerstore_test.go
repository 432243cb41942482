// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package badgerstore

import (
	"context"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/planetary/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func insert(t *testing.T, s *Store, name, climate, terrain string, n int) string {
	t.Helper()
	id, err := s.Insert(context.Background(), models.Planet{
		Name: name, Climate: climate, Terrain: terrain, NAppearances: n,
	})
	require.NoError(t, err)
	return id
}

func TestInsertAndFind(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := insert(t, s, "Tatooine", "arid", "desert", 5)
	assert.Len(t, id, 24)

	byID, found, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Planet{ID: id, Name: "Tatooine", Climate: "arid", Terrain: "desert", NAppearances: 5}, byID)

	byName, found, err := s.FindByName(ctx, "Tatooine")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, byID, byName)

	_, found, err = s.FindByName(ctx, "tatooine")
	require.NoError(t, err)
	assert.False(t, found, "names are matched exactly")
}

func TestFindByID_MalformedOrUnknown(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "5f1d7e3b9a1c2d3e4f5a6b7c"} {
		_, found, err := s.FindByID(ctx, id)
		require.NoError(t, err, id)
		assert.False(t, found, id)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	names := []string{"Hoth", "Alderaan", "Naboo", "Bespin"}
	for _, n := range names {
		insert(t, s, n, "c", "t", 0)
	}

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, p := range list {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestFindByName_OldestWins(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	first := insert(t, s, "Kamino", "temperate", "ocean", 1)
	insert(t, s, "Kamino", "stormy", "ocean", 2)

	p, found, err := s.FindByName(ctx, "Kamino")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first, p.ID)
}

func TestFindByName_IgnoresNamesContainingSeparator(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	hoth := insert(t, s, "Hoth", "frozen", "tundra", 1)
	// Indexed as "Hoth\x00" + "0\x00<id>", which sorts ahead of the real entry.
	shadow := insert(t, s, "Hoth\x000", "arid", "desert", 0)

	got, found, err := s.FindByName(ctx, "Hoth")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, hoth, got.ID)

	got, found, err = s.FindByName(ctx, "Hoth\x000")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, shadow, got.ID)

	updated, found, err := s.UpdateByName(ctx, "Hoth", models.PlanetFields{Name: "Hoth", Climate: "cold", Terrain: "ice"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, hoth, updated.ID)

	deleted, found, err := s.DeleteByName(ctx, "Hoth")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, hoth, deleted.ID)

	_, found, err = s.FindByName(ctx, "Hoth")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateByID(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := insert(t, s, "Hoth", "frozen", "tundra", 1)

	updated, found, err := s.UpdateByID(ctx, id, models.PlanetFields{Name: "Echo", Climate: "cold", Terrain: "ice"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Planet{ID: id, Name: "Echo", Climate: "cold", Terrain: "ice", NAppearances: 1}, updated)

	_, found, err = s.FindByName(ctx, "Hoth")
	require.NoError(t, err)
	assert.False(t, found, "old name index entry must be removed")

	p, found, err := s.FindByName(ctx, "Echo")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, updated, p)

	_, found, err = s.UpdateByID(ctx, "5f1d7e3b9a1c2d3e4f5a6b7c", models.PlanetFields{Name: "X"})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.UpdateByID(ctx, "bogus", models.PlanetFields{Name: "X"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateByName(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := insert(t, s, "Dagobah", "murky", "swamp", 3)

	updated, found, err := s.UpdateByName(ctx, "Dagobah", models.PlanetFields{Name: "Dagobah", Climate: "humid", Terrain: "bog"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Planet{ID: id, Name: "Dagobah", Climate: "humid", Terrain: "bog", NAppearances: 3}, updated)

	_, found, err = s.UpdateByName(ctx, "Nowhere", models.PlanetFields{Name: "X"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdate_PreservesUnknownFields(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := "5f1d7e3b9a1c2d3e4f5a6b7c"
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(docKey(id), []byte(`{"_id":"`+id+`","name":"Endor","climate":"temperate","terrain":"forest","n_appearances":1,"moons":1}`)); err != nil {
			return err
		}
		return txn.Set(nameKey("Endor", id), []byte(id))
	}))

	_, found, err := s.UpdateByID(ctx, id, models.PlanetFields{Name: "Endor", Climate: "mild", Terrain: "forest"})
	require.NoError(t, err)
	require.True(t, found)

	raw := rawDoc(t, s, id)
	assert.JSONEq(t, `1`, string(raw["moons"]))
	assert.JSONEq(t, `"mild"`, string(raw["climate"]))
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	a := insert(t, s, "Alderaan", "temperate", "grasslands", 2)
	b := insert(t, s, "Yavin", "tropical", "jungle", 1)

	deleted, found, err := s.DeleteByID(ctx, a)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Alderaan", deleted.Name)

	_, found, err = s.FindByName(ctx, "Alderaan")
	require.NoError(t, err)
	assert.False(t, found)

	deleted, found, err = s.DeleteByName(ctx, "Yavin")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, b, deleted.ID)

	_, found, err = s.DeleteByName(ctx, "Yavin")
	require.NoError(t, err)
	assert.False(t, found)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRenameFields(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := "5f1d7e3b9a1c2d3e4f5a6b7c"
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(docKey(id), []byte(`{"_id":"`+id+`","nome":"Mustafar","clima":"hot","terreno":"volcanic","n_appearances":2}`))
	}))
	other := insert(t, s, "Coruscant", "temperate", "cityscape", 4)

	n, err := s.RenameFields(ctx, map[string]string{"nome": "name", "clima": "climate", "terreno": "terrain"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	p, found, err := s.FindByName(ctx, "Mustafar")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Planet{ID: id, Name: "Mustafar", Climate: "hot", Terrain: "volcanic", NAppearances: 2}, p)

	p, found, err = s.FindByName(ctx, "Coruscant")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, other, p.ID)

	n, err = s.RenameFields(ctx, map[string]string{"nome": "name"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRenameFields_RejectsID(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	_, err := s.RenameFields(context.Background(), map[string]string{"_id": "id"})
	require.Error(t, err)
	_, err = s.RenameFields(context.Background(), map[string]string{"a": "a"})
	require.Error(t, err)
}

func TestConcurrentUpdates(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	id := insert(t, s, "Jakku", "arid", "desert", 0)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.UpdateByID(ctx, id, models.PlanetFields{Name: "Jakku", Climate: "hot", Terrain: "sand"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, found, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "sand", p.Terrain)
}

func TestPingAndClose(t *testing.T) {
	t.Parallel()
	s, err := Open("", true)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, "badger", s.Backend())
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close(ctx))
	require.Error(t, s.Ping(ctx))
	require.NoError(t, s.Close(ctx))
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Insert(ctx, models.Planet{Name: "X"})
	require.ErrorIs(t, err, context.Canceled)
	_, _, err = s.DeleteByName(ctx, "X")
	require.ErrorIs(t, err, context.Canceled)
}

func rawDoc(t *testing.T, s *Store, id string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error { return json.Unmarshal(val, &raw) })
	}))
	return raw
}
