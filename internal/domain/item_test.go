package domain

import "testing"

func TestCheck(t *testing.T) {
	testCases := []struct {
		name          string
		given         string
		expectedMatch bool
	}{
		{name: "Exact match", given: "das", expectedMatch: true},
		{name: "Surrounding whitespace", given: "  das \t", expectedMatch: true},
		{name: "Different case", given: "Das", expectedMatch: false},
		{name: "Wrong answer", given: "die", expectedMatch: false},
		{name: "Empty answer", given: "", expectedMatch: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := NewItem("Haus", "das")
			matched := item.Check(tc.given)

			if matched != tc.expectedMatch {
				t.Errorf("Expected match to be %v, but got %v", tc.expectedMatch, matched)
			}
			if item.Attempts != 1 {
				t.Errorf("Expected 1 attempt, but got %d", item.Attempts)
			}
			expectedSuccesses := 0
			if tc.expectedMatch {
				expectedSuccesses = 1
			}
			if item.Successes != expectedSuccesses {
				t.Errorf("Expected %d successes, but got %d", expectedSuccesses, item.Successes)
			}
		})
	}
}

func TestSuccessesNeverExceedAttempts(t *testing.T) {
	item := NewItem("Frau", "die")
	answers := []string{"die", "der", "die", " die ", "DIE", "", "die"}
	for i, a := range answers {
		item.Check(a)
		if item.Successes > item.Attempts {
			t.Fatalf("after answer %d: successes %d exceed attempts %d", i, item.Successes, item.Attempts)
		}
	}
	if item.Attempts != len(answers) {
		t.Errorf("Expected %d attempts, but got %d", len(answers), item.Attempts)
	}
	if item.Successes != 4 {
		t.Errorf("Expected 4 successes, but got %d", item.Successes)
	}
}

func TestRatio(t *testing.T) {
	t.Run("untried item has no ratio", func(t *testing.T) {
		item := NewItem("Haus", "das")
		if _, ok := item.Ratio(); ok {
			t.Error("Expected untried item to report no ratio")
		}
	})

	t.Run("ratio after attempts", func(t *testing.T) {
		item := NewItem("Haus", "das")
		item.Check("die")
		item.Check("das")
		ratio, ok := item.Ratio()
		if !ok {
			t.Fatal("Expected ratio to be defined after attempts")
		}
		if ratio != 0.5 {
			t.Errorf("Expected ratio 0.5, but got %v", ratio)
		}
	})
}
