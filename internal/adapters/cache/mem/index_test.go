package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGetDel(t *testing.T) {
	c := New()

	_, ok, err := c.Get("k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set("k", []byte("v"), 0))

	v, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), v)

	require.NoError(t, c.Del("k"))

	_, ok, err = c.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := New()

	require.NoError(t, c.Set("k", []byte("v"), 30*time.Millisecond))

	_, ok, err := c.Get("k")
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok, err = c.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestJsonObj(t *testing.T) {
	type objSt struct {
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}

	c := New()

	require.NoError(t, c.SetJsonObj("k", objSt{Name: "acme", Count: 7}, 0))

	got := objSt{}
	ok, err := c.GetJsonObj("k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, objSt{Name: "acme", Count: 7}, got)

	ok, err = c.GetJsonObj("missing", &got)
	require.NoError(t, err)
	require.False(t, ok)
}
