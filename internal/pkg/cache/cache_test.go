package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(rdb), mr
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "active_branches", []entry{{Name: "HQ"}}, time.Minute)

	var got []entry
	require.True(t, c.GetJSON(ctx, "active_branches", &got))
	assert.Equal(t, []entry{{Name: "HQ"}}, got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache(t)

	var got []entry
	assert.False(t, c.GetJSON(context.Background(), "nope", &got))
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "active_shifts", []entry{{Name: "Morning"}}, time.Minute)
	mr.FastForward(2 * time.Minute)

	var got []entry
	assert.False(t, c.GetJSON(ctx, "active_shifts", &got))
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "active_devices", []entry{{Name: "Gate A"}}, time.Minute)
	c.Delete(ctx, "active_devices")

	var got []entry
	assert.False(t, c.GetJSON(ctx, "active_devices", &got))
}

func TestCache_DeletePrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "active_employees", []entry{{Name: "a"}}, time.Minute)
	c.SetJSON(ctx, "active_employees_dept_7", []entry{{Name: "b"}}, time.Minute)
	c.SetJSON(ctx, "active_branches", []entry{{Name: "c"}}, time.Minute)

	c.DeletePrefix(ctx, "active_employees")

	var got []entry
	assert.False(t, c.GetJSON(ctx, "active_employees", &got))
	assert.False(t, c.GetJSON(ctx, "active_employees_dept_7", &got))
	assert.True(t, c.GetJSON(ctx, "active_branches", &got))
}

func TestCache_DropsCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("active_branches", "not-json"))

	var got []entry
	assert.False(t, c.GetJSON(ctx, "active_branches", &got))
	assert.False(t, mr.Exists("active_branches"))
}
