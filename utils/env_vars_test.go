package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnv("TREEDO_TEST_UNSET", "fallback"))
		assert.Equal(t, 42, GetEnv("TREEDO_TEST_UNSET", 42))
	})

	t.Run("default when empty", func(t *testing.T) {
		t.Setenv("TREEDO_TEST_EMPTY", "")
		assert.True(t, GetEnv("TREEDO_TEST_EMPTY", true))
	})

	t.Run("parsed values", func(t *testing.T) {
		t.Setenv("TREEDO_TEST_STRING", "hello")
		t.Setenv("TREEDO_TEST_INT", "12")
		t.Setenv("TREEDO_TEST_BOOL", "true")
		t.Setenv("TREEDO_TEST_DURATION", "1m30s")

		assert.Equal(t, "hello", GetEnv("TREEDO_TEST_STRING", ""))
		assert.Equal(t, 12, GetEnv("TREEDO_TEST_INT", 0))
		assert.True(t, GetEnv("TREEDO_TEST_BOOL", false))
		assert.Equal(t, 90*time.Second, GetEnv("TREEDO_TEST_DURATION", time.Duration(0)))
	})

	t.Run("malformed value panics", func(t *testing.T) {
		t.Setenv("TREEDO_TEST_INT", "twelve")
		assert.Panics(t, func() { GetEnv("TREEDO_TEST_INT", 0) })
	})
}
