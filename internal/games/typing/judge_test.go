package typing

import "testing"

func TestJudgeMatchesChar(t *testing.T) {
	j := NewJudge("Loop")

	tests := []struct {
		index int
		r     rune
		want  bool
	}{
		{0, 'l', true},
		{0, 'L', true},
		{1, 'O', true},
		{3, 'p', true},
		{3, 'x', false},
		{4, 'p', false},
		{-1, 'l', false},
	}

	for _, tt := range tests {
		if got := j.MatchesChar(tt.index, tt.r); got != tt.want {
			t.Errorf("MatchesChar(%d, %q) = %v, expected %v", tt.index, tt.r, got, tt.want)
		}
	}
}

func TestJudgeIsWordComplete(t *testing.T) {
	j := NewJudge("loop")

	if !j.IsWordComplete([]rune("LOOP")) {
		t.Error("Expected case-insensitive completion")
	}
	if j.IsWordComplete([]rune("loo")) {
		t.Error("Partial input must not complete the word")
	}
	if j.IsWordComplete([]rune("loops")) {
		t.Error("Longer input must not complete the word")
	}
	if j.IsWordComplete([]rune{'l', 'o', 'o', 0}) {
		t.Error("Unfilled slot must not complete the word")
	}
	if j.IsWordComplete([]rune("lxop")) {
		t.Error("Mismatch must not complete the word")
	}
}

func TestJudgeUnicode(t *testing.T) {
	j := NewJudge("Café")
	if j.Len() != 4 {
		t.Fatalf("Expected 4 characters, got %d", j.Len())
	}
	if !j.MatchesChar(3, 'É') {
		t.Error("Expected É to match é")
	}
	if j.Target() != "Café" {
		t.Errorf("Expected target Café, got %q", j.Target())
	}
}

func TestJudgeEmptyTarget(t *testing.T) {
	j := NewJudge("")
	if j.IsWordComplete(nil) {
		t.Error("Empty target must never complete")
	}
}
