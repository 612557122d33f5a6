package utils

import "strconv"

// Round rounds v to the given decimal places using its exact decimal value,
// with exact ties going to the even digit: 73.125 becomes 73.12 and 0.8875,
// stored as 0.88749..., becomes 0.887.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
