package rt

import "strconv"

// Number formatting helpers backing the language's Number methods. The
// clamp ranges are the ones the language documents: fixed and exponential
// accept 0..20 decimals, precision accepts 1..21 significant digits.

// NumberToFixed formats num with a fixed number of decimal places.
func NumberToFixed(num float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 20 {
		decimals = 20
	}
	return strconv.FormatFloat(num, 'f', decimals, 64)
}

// NumberToPrecision formats num with the given number of significant
// digits.
func NumberToPrecision(num float64, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 21 {
		precision = 21
	}
	return strconv.FormatFloat(num, 'g', precision, 64)
}

// NumberToExponential formats num in exponential notation with the given
// number of decimals.
func NumberToExponential(num float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 20 {
		decimals = 20
	}
	return strconv.FormatFloat(num, 'e', decimals, 64)
}
