package services

import "testing"

func TestSelectVideoDeterministic(t *testing.T) {
	id1, title1 := SelectVideo("guitar", "beginner", 3)
	id2, title2 := SelectVideo("guitar", "beginner", 3)
	if id1 != id2 || title1 != title2 {
		t.Errorf("selection is not deterministic: (%q, %q) vs (%q, %q)", id1, title1, id2, title2)
	}
}

func TestSelectVideoCuratedSequence(t *testing.T) {
	id, _ := SelectVideo("guitar", "beginner", 1)
	if id != "F5bbIpZFXyY" {
		t.Errorf("guitar beginner day 1 = %q, want F5bbIpZFXyY", id)
	}
	id, _ = SelectVideo("guitar", "intermediate", 1)
	if id != "yCXsALlVqGY" {
		t.Errorf("guitar intermediate day 1 = %q, want yCXsALlVqGY", id)
	}
}

func TestSelectVideoClampsDayNumber(t *testing.T) {
	lastID, lastTitle := SelectVideo("guitar", "beginner", 7)
	id, title := SelectVideo("guitar", "beginner", 50)
	if id != lastID || title != lastTitle {
		t.Errorf("day 50 should clamp to day 7, got (%q, %q) want (%q, %q)", id, title, lastID, lastTitle)
	}
	if id, _ := SelectVideo("guitar", "beginner", 0); id != "F5bbIpZFXyY" {
		t.Errorf("day 0 should clamp to day 1, got %q", id)
	}
}

func TestSelectVideoLevelFallback(t *testing.T) {
	// cooking has no intermediate sequence, so it falls back to "some".
	id, _ := SelectVideo("cooking", "intermediate", 1)
	if id != "2ZSoUGFcLbY" {
		t.Errorf("cooking intermediate day 1 = %q, want the some-level opener 2ZSoUGFcLbY", id)
	}
	// painting only has beginner.
	id, _ = SelectVideo("painting", "some", 2)
	if id != "tQ3EcbTTWlI" {
		t.Errorf("painting some day 2 = %q, want the beginner day 2 video", id)
	}
}

func TestSelectVideoUnknownHobby(t *testing.T) {
	id, title := SelectVideo("beekeeping", "beginner", 3)
	if id != fallbackVideo.VideoID {
		t.Errorf("unknown hobby video id = %q, want the fixed fallback %q", id, fallbackVideo.VideoID)
	}
	if title != "Practicing Beekeeping Effectively" {
		t.Errorf("unknown hobby day 3 title = %q", title)
	}

	otherID, otherTitle := SelectVideo("beekeeping", "beginner", 5)
	if otherID != id {
		t.Error("every day of an unknown hobby uses the same fallback video id")
	}
	if otherTitle == title {
		t.Error("generic titles should vary by day")
	}
}

func TestNormalizeSkillLevel(t *testing.T) {
	cases := map[string]string{
		"":                "beginner",
		"Beginner":        "beginner",
		"some":            "some",
		"Some Experience": "some",
		"intermediate":    "intermediate",
		"advanced":        "intermediate",
		"wizard":          "beginner",
	}
	for input, want := range cases {
		if got := normalizeSkillLevel(input); got != want {
			t.Errorf("normalizeSkillLevel(%q) = %q, want %q", input, got, want)
		}
	}
}
