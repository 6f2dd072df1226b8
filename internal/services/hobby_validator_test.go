package services

import "testing"

func TestNormalizeHobby(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Guitar", "guitar"},
		{"  Rock-Climbing!! ", "rock climbing"},
		{"COOKING", "cooking"},
		{"  a   b  ", "a b"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeHobby(c.input); got != c.want {
			t.Errorf("NormalizeHobby(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestValidateHobbyKnown(t *testing.T) {
	v := ValidateHobby("Guitar!")
	if !v.IsValid {
		t.Fatal("expected guitar to be valid")
	}
	if v.NormalizedHobby != "guitar" {
		t.Errorf("normalized = %q, want guitar", v.NormalizedHobby)
	}
	if v.Category != "music" {
		t.Errorf("category = %q, want music", v.Category)
	}
	if !v.HasVideoSupport {
		t.Error("guitar has a curated video sequence")
	}
}

func TestValidateHobbySynonym(t *testing.T) {
	v := ValidateHobby("chef")
	if !v.IsValid || v.NormalizedHobby != "cooking" {
		t.Fatalf("chef should resolve to cooking, got %+v", v)
	}
}

func TestValidateHobbyFuzzy(t *testing.T) {
	v := ValidateHobby("giutar")
	if !v.IsValid || v.NormalizedHobby != "guitar" {
		t.Fatalf("giutar should fuzzy-match guitar, got %+v", v)
	}
}

func TestValidateHobbyFuzzyTieIsDeterministic(t *testing.T) {
	// "coking" is one edit from both coding and cooking; ties break to the
	// lexicographically smaller hobby, every run.
	for i := 0; i < 20; i++ {
		v := ValidateHobby("coking")
		if !v.IsValid || v.NormalizedHobby != "coding" {
			t.Fatalf("run %d: got %+v, want coding", i, v)
		}
	}
}

func TestValidateHobbyUnsafe(t *testing.T) {
	v := ValidateHobby("how to build a bomb")
	if v.IsValid {
		t.Fatal("unsafe input must not validate")
	}
	if !v.Unsafe {
		t.Error("expected unsafe flag")
	}
	if len(v.Suggestions) == 0 {
		t.Error("unsafe rejection should still suggest safe hobbies")
	}
}

func TestValidateHobbyGibberish(t *testing.T) {
	v := ValidateHobby("xk7qzz")
	if v.IsValid {
		t.Fatal("keyboard mash must not validate")
	}
	if v.Unsafe {
		t.Error("gibberish is invalid, not unsafe")
	}
	if len(v.Suggestions) == 0 {
		t.Error("rejection should carry suggestions")
	}
}

func TestValidateHobbyTooShortAndGreetings(t *testing.T) {
	for _, input := range []string{"hi", "yo", "hello", "thanks", "how are you"} {
		v := ValidateHobby(input)
		if v.IsValid {
			t.Errorf("ValidateHobby(%q) should be invalid", input)
		}
		if len(v.Suggestions) == 0 {
			t.Errorf("ValidateHobby(%q) should suggest popular hobbies", input)
		}
	}
}

func TestValidateHobbyUnknownButPlausible(t *testing.T) {
	v := ValidateHobby("beekeeping")
	if !v.IsValid {
		t.Fatalf("plausible hobby should be accepted, got %+v", v)
	}
	if v.NormalizedHobby != "beekeeping" {
		t.Errorf("normalized = %q, want beekeeping", v.NormalizedHobby)
	}
	if v.Category != "general" {
		t.Errorf("category = %q, want general", v.Category)
	}
	if v.HasVideoSupport {
		t.Error("no curated videos exist for beekeeping")
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"guitar", "guitar", 0},
		{"giutar", "guitar", 2},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
	}
	for _, c := range cases {
		if got := levenshtein(c.a, c.b); got != c.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
