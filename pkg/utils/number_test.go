package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1250000.0, ToFloat("1250000.00"))
	assert.Equal(t, 5.0, ToFloat(5))
	assert.Equal(t, 2.5, ToFloat(2.5))
	assert.Equal(t, 0.0, ToFloat(nil))
	assert.Equal(t, 0.0, ToFloat(""))
	assert.Equal(t, 0.0, ToFloat("n/a"))
	assert.Equal(t, 0.0, ToFloat(false))
}
