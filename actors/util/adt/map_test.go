package adt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/FeineCapital/PLSXSSS/actors/builtin"
	"github.com/FeineCapital/PLSXSSS/actors/util/adt"
	"github.com/FeineCapital/PLSXSSS/support/ipld"
)

func TestMapPutGet(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(7)
	require.NoError(t, m.Put(adt.StringKey("k"), &v))

	var out cbg.CborInt
	found, err := m.Get(adt.StringKey("k"), &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, v, out)

	found, err = m.Get(adt.StringKey("missing"), nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapPutIfAbsent(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(1)
	modified, err := m.PutIfAbsent(adt.StringKey("k"), &v)
	require.NoError(t, err)
	assert.True(t, modified)

	w := cbg.CborInt(2)
	modified, err = m.PutIfAbsent(adt.StringKey("k"), &w)
	require.NoError(t, err)
	assert.False(t, modified)

	var out cbg.CborInt
	_, err = m.Get(adt.StringKey("k"), &out)
	require.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestMapDelete(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(7)
	require.NoError(t, m.Put(adt.StringKey("k"), &v))
	require.NoError(t, m.Delete(adt.StringKey("k")))

	found, err := m.Has(adt.StringKey("k"))
	require.NoError(t, err)
	assert.False(t, found)

	// deleting an absent key is an error, TryDelete is not
	assert.Error(t, m.Delete(adt.StringKey("k")))
	found, err = m.TryDelete(adt.StringKey("k"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMapCollectKeys(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	for _, k := range []string{"a", "b", "c"} {
		v := cbg.CborInt(1)
		require.NoError(t, m.Put(adt.StringKey(k), &v))
	}

	keys, err := m.CollectKeys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)
}

func TestMapRoundTrip(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	m, err := adt.MakeEmptyMap(store, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(7)
	require.NoError(t, m.Put(adt.StringKey("k"), &v))

	root, err := m.Root()
	require.NoError(t, err)

	loaded, err := adt.AsMap(store, root, builtin.DefaultHamtBitwidth)
	require.NoError(t, err)

	var out cbg.CborInt
	found, err := loaded.Get(adt.StringKey("k"), &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, v, out)
}
