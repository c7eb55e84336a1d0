package main

import "testing"

func TestCalibration(t *testing.T) {
	tests := []struct {
		line  string
		words bool
		want  int
	}{
		{"treb7uchet", false, 77},
		{"a1b2c3d4e5f", false, 15},
		{"eightwo", true, 82},
		{"eightwo", false, 0},
		{"zoneight234", true, 14},
		{"nodigits", true, 0},
	}
	for _, tt := range tests {
		if got := calibration(tt.line, tt.words); got != tt.want {
			t.Errorf("calibration(%q, %v) = %d, want %d", tt.line, tt.words, got, tt.want)
		}
	}
}

func TestParseHand(t *testing.T) {
	tests := []struct {
		line   string
		jokers bool
		want   handKind
	}{
		{"32T3K 765", false, onePair},
		{"KTJJT 220", false, twoPair},
		{"KTJJT 220", true, fourOfAKind},
		{"T55J5 684", true, fourOfAKind},
		{"JJJJJ 1", true, fiveOfAKind},
		{"JJJJJ 1", false, fiveOfAKind},
		{"23JJ4 1", true, threeOfAKind},
		{"2233J 1", true, fullHouse},
		{"23456 1", false, highCard},
	}
	for _, tt := range tests {
		if got := parseHand(tt.line, tt.jokers).kind; got != tt.want {
			t.Errorf("parseHand(%q, %v).kind = %v, want %v", tt.line, tt.jokers, got, tt.want)
		}
	}
	if a, b := parseHand("JKKK2 1", true), parseHand("QQQQ2 1", true); a.cards[0] >= b.cards[0] {
		t.Errorf("joker should rank below queen: %v vs %v", a.cards, b.cards)
	}
}

func TestWaysToWin(t *testing.T) {
	tests := []struct {
		time, record, want int
	}{
		{7, 9, 4},
		{15, 40, 8},
		{30, 200, 9},
		{71530, 940200, 71503},
		{4, 4, 0},
	}
	for _, tt := range tests {
		if got := waysToWin(tt.time, tt.record); got != tt.want {
			t.Errorf("waysToWin(%d, %d) = %d, want %d", tt.time, tt.record, got, tt.want)
		}
	}
}
