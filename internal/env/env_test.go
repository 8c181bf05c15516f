package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", String("TEST_STRING", "default"))
	assert.Equal(t, "default", String("TEST_STRING_MISSING", "default"))
}

func TestInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "not a number")

	assert.Equal(t, 42, Int("TEST_INT", 7))
	assert.Equal(t, 7, Int("TEST_INT_BAD", 7))
	assert.Equal(t, 7, Int("TEST_INT_MISSING", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_ONE", "1")
	t.Setenv("TEST_BOOL_FALSE", "false")
	t.Setenv("TEST_BOOL_BAD", "yep")

	assert.True(t, Bool("TEST_BOOL_TRUE", false))
	assert.True(t, Bool("TEST_BOOL_ONE", false))
	assert.False(t, Bool("TEST_BOOL_FALSE", true))
	assert.True(t, Bool("TEST_BOOL_BAD", true))
	assert.False(t, Bool("TEST_BOOL_MISSING", false))
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "15s")
	t.Setenv("TEST_DURATION_BAD", "15 parsecs")

	assert.Equal(t, 15*time.Second, Duration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, Duration("TEST_DURATION_BAD", time.Minute))
	assert.Equal(t, time.Minute, Duration("TEST_DURATION_MISSING", time.Minute))
}
