package utils

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// FormatPossibleFraction prints integral values without decimals and anything
// else with one decimal place
func FormatPossibleFraction(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// CeilInt rounds up to the nearest integer
func CeilInt(value float64) int {
	return int(math.Ceil(value))
}

// MaxWidth returns the widest string in runes
func MaxWidth(values []string) int {
	width := 0
	for _, value := range values {
		if n := utf8.RuneCountInString(value); n > width {
			width = n
		}
	}
	return width
}

// PadRight pads value with spaces to width runes
func PadRight(value string, width int) string {
	for n := utf8.RuneCountInString(value); n < width; n++ {
		value += " "
	}
	return value
}

// PadLeft pads value with leading spaces to width runes
func PadLeft(value string, width int) string {
	for n := utf8.RuneCountInString(value); n < width; n++ {
		value = " " + value
	}
	return value
}
