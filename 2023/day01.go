package main

import (
	"strings"

	"github.com/seedmap/aoc"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	var sum int
	s.ForLines(func(line string) {
		sum += calibration(line, false)
	})
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	var sum int
	s.ForLines(func(line string) {
		sum += calibration(line, true)
	})
	return sum
}

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibration returns the two-digit number made of the first and last digit
// in line. Spelled-out digits count when words is set; they may overlap, as
// in "eightwo".
func calibration(line string, words bool) int {
	first, last := -1, -1
	see := func(d int) {
		if first == -1 {
			first = d
		}
		last = d
	}
	for i, r := range line {
		if aoc.IsDigit(r) {
			see(aoc.Digit(r))
			continue
		}
		if !words {
			continue
		}
		for j, w := range digitWords {
			if strings.HasPrefix(line[i:], w) {
				see(j + 1)
				break
			}
		}
	}
	if first == -1 {
		return 0
	}
	return first*10 + last
}
