package util_test

import (
	"testing"

	"lintang/metronav/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 3.14, util.RoundFloat(3.14159, 2))
	assert.Equal(t, float32(2.5), util.RoundFloat(float32(2.46), 1))
}

func TestMinIndex(t *testing.T) {
	assert.Equal(t, -1, util.MinIndex([]float64{}))
	assert.Equal(t, 1, util.MinIndex([]float64{4, 1, 3, 1}))
	assert.Equal(t, 0, util.MinIndex([]int{7}))
}
