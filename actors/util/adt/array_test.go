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

func TestArrayNotFound(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	arr, err := adt.MakeEmptyArray(store, builtin.DefaultAmtBitwidth)
	require.NoError(t, err)

	found, err := arr.Get(7, nil)
	require.NoError(t, err)
	require.False(t, found)
}

func TestArrayAppendContinuous(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	arr, err := adt.MakeEmptyArray(store, builtin.DefaultAmtBitwidth)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		v := cbg.CborInt(i * 10)
		require.NoError(t, arr.AppendContinuous(&v))
	}
	assert.Equal(t, uint64(5), arr.Length())

	var out cbg.CborInt
	found, err := arr.Get(3, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cbg.CborInt(30), out)
}

func TestArrayRoundTrip(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	arr, err := adt.MakeEmptyArray(store, builtin.DefaultAmtBitwidth)
	require.NoError(t, err)

	v := cbg.CborInt(42)
	require.NoError(t, arr.Set(9, &v))

	root, err := arr.Root()
	require.NoError(t, err)

	loaded, err := adt.AsArray(store, root, builtin.DefaultAmtBitwidth)
	require.NoError(t, err)

	var out cbg.CborInt
	found, err := loaded.Get(9, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, v, out)
}
