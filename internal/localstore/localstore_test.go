package localstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type blob struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	in := blob{Name: "boutique", Count: 3, Price: 49.99}
	require.NoError(t, store.Save("testKey", in))

	var out blob
	require.NoError(t, store.Load("testKey", &out))
	require.Equal(t, in, out)
}

func TestSaveReplacesSnapshot(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("k", blob{Name: "first"}))
	require.NoError(t, store.Save("k", blob{Name: "second"}))

	var out blob
	require.NoError(t, store.Load("k", &out))
	require.Equal(t, "second", out.Name)
	require.Zero(t, out.Count) // full replacement, nothing merged
}

func TestLoadMissingKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	var out blob
	require.ErrorIs(t, store.Load("nothing", &out), ErrNoValue)
}

func TestRemove(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("k", blob{Name: "x"}))
	require.NoError(t, store.Remove("k"))

	var out blob
	require.ErrorIs(t, store.Load("k", &out), ErrNoValue)

	// removing twice is fine
	require.NoError(t, store.Remove("k"))
}
