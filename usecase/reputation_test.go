package usecase

import "testing"

func TestRatingDelta(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"FiveStars", 5, 5},
		{"FourStars", 4, 5},
		{"ThreeStars", 3, 0},
		{"TwoStars", 2, -2},
		{"OneStar", 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ratingDelta(tt.value); got != tt.want {
				t.Errorf("ratingDelta(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestRatingChangeDelta(t *testing.T) {
	tests := []struct {
		name     string
		oldValue int
		newValue int
		want     int
	}{
		// reverse the old value's delta, then apply the new one
		{"FiveToOne", 5, 1, -7},
		{"OneToFive", 1, 5, 7},
		{"FiveToThree", 5, 3, -5},
		{"ThreeToFour", 3, 4, 5},
		{"TwoToOne", 2, 1, 0},
		{"FourToFive", 4, 5, 0},
		{"SameValueResubmission", 2, 2, 0},
		{"ThreeToThree", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ratingChangeDelta(tt.oldValue, tt.newValue); got != tt.want {
				t.Errorf("ratingChangeDelta(%d, %d) = %d, want %d",
					tt.oldValue, tt.newValue, got, tt.want)
			}
		})
	}
}

func TestNoteLifecycleDeltas(t *testing.T) {
	if noteCreatedDelta != 10 {
		t.Errorf("noteCreatedDelta = %d, want 10", noteCreatedDelta)
	}
	if noteDeletedDelta != -10 {
		t.Errorf("noteDeletedDelta = %d, want -10", noteDeletedDelta)
	}
	if noteCreatedDelta+noteDeletedDelta != 0 {
		t.Error("deleting a note must exactly undo the creation credit")
	}
}
