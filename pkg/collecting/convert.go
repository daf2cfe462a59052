package collecting

import "math"

// gigabytes converts a byte count to GB rounded to two decimals.
func gigabytes(b uint64) float64 {
	return round2(float64(b) / (1 << 30))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
