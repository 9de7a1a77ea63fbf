package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func RoundFloat[T constraints.Float](val T, precision uint) T {
	ratio := math.Pow(10, float64(precision))
	return T(math.Round(float64(val)*ratio) / ratio)
}

// MinIndex index elemen terkecil, elemen pertama menang kalau ada nilai yang sama. -1 kalau kosong.
func MinIndex[T constraints.Ordered](arr []T) int {
	idx := -1
	for i, v := range arr {
		if idx == -1 || v < arr[idx] {
			idx = i
		}
	}
	return idx
}
