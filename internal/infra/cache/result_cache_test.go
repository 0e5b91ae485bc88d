package cache

import (
	"testing"
	"time"

	"studyhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syllabus(id string) entity.Resource {
	return &entity.Syllabus{ResourceBase: entity.ResourceBase{ID: id, DepartmentID: "1"}}
}

func TestResultCache_GetSet(t *testing.T) {
	c := NewResultCache(8, time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)

	records := []entity.Resource{syllabus("a"), syllabus("b")}
	c.Set("k", records)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, records, got)

	// Later changes to the caller's slice do not reach the cache.
	records[0] = syllabus("z")
	got, _ = c.Get("k")
	assert.Equal(t, "a", got[0].ResourceID())
}

func TestResultCache_Expires(t *testing.T) {
	c := NewResultCache(8, 20*time.Millisecond)
	c.Set("k", []entity.Resource{syllabus("a")})

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")

		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestResultCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResultCache(2, time.Minute)
	c.Set("a", nil)
	c.Set("b", nil)
	_, _ = c.Get("a")
	c.Set("c", nil)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.Equal(t, 2, c.Len())
}

func TestResultCache_EmptyListIsCached(t *testing.T) {
	c := NewResultCache(2, time.Minute)
	c.Set("empty", []entity.Resource{})

	got, ok := c.Get("empty")
	assert.True(t, ok)
	assert.Empty(t, got)
}
