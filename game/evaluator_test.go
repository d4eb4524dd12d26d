package game

import (
	"testing"
)

func TestBestDistanceExactMatch(t *testing.T) {
	// The multiset {0,2,2,3,5,7,9} can be ordered "0792352", which reads as
	// 792352, so the distance to that answer is exactly zero.
	hole := []Digit{7, 2}
	community := []Digit{3, 9, 2, 5, 0}

	d, ok := BestDistance(hole, community, 792352)
	if !ok {
		t.Fatal("Expected a finite distance for a dealt hand")
	}
	if d != 0 {
		t.Errorf("Expected distance 0, got %d", d)
	}
}

func TestBestDistanceEmptyHand(t *testing.T) {
	if _, ok := BestDistance(nil, nil, 42); ok {
		t.Error("Empty digit set should evaluate as infinitely far away")
	}
}

func TestBestDistanceLeadingZeros(t *testing.T) {
	// "07" reads as 7; leading zeros are kept in the ordering but collapse
	// in the numeric value.
	d, ok := BestDistance([]Digit{0, 7}, nil, 7)
	if !ok {
		t.Fatal("Expected a finite distance")
	}
	if d != 0 {
		t.Errorf("Expected distance 0 via the 07 ordering, got %d", d)
	}
}

func TestBestDistanceMinimumOverOrderings(t *testing.T) {
	// Candidates are 12 and 21; the closest to 13 is 12.
	d, ok := BestDistance([]Digit{1, 2}, nil, 13)
	if !ok {
		t.Fatal("Expected a finite distance")
	}
	if d != 1 {
		t.Errorf("Expected distance 1, got %d", d)
	}
}

func TestBestDistanceUsesAllDigits(t *testing.T) {
	// Orderings always consume the whole multiset: a 3-digit hand cannot
	// match a 2-digit answer, even though a subset of it would.
	d, ok := BestDistance([]Digit{1, 2, 3}, nil, 12)
	if !ok {
		t.Fatal("Expected a finite distance")
	}
	if d != 111 {
		t.Errorf("Expected distance 111 (candidate 123), got %d", d)
	}
}

func TestBestDistanceDuplicateDigits(t *testing.T) {
	// Repeated digits inflate the candidate set but not its distinct values.
	d, ok := BestDistance([]Digit{1, 1}, nil, 11)
	if !ok {
		t.Fatal("Expected a finite distance")
	}
	if d != 0 {
		t.Errorf("Expected distance 0, got %d", d)
	}
}

func TestBestDistanceNonNegative(t *testing.T) {
	answers := []int64{0, 1, 999, 79235, 10000000}
	for _, answer := range answers {
		d, ok := BestDistance([]Digit{9, 9}, []Digit{0, 1, 2, 3, 4}, answer)
		if !ok {
			t.Fatalf("Expected a finite distance for answer %d", answer)
		}
		if d < 0 {
			t.Errorf("Distance must be non-negative, got %d for answer %d", d, answer)
		}
	}
}
