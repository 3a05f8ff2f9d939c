package usecase

import "testing"

func TestDetectShorthand(t *testing.T) {
	d := NewMentionDetector("Akashvani", "@av")

	mention, ok := d.Detect("@av what did we decide about the venue?")
	if !ok {
		t.Fatal("Expected mention to be detected")
	}
	if mention.Token != "@av" {
		t.Errorf("Expected token @av, got %q", mention.Token)
	}
	if mention.Query != "what did we decide about the venue?" {
		t.Errorf("Unexpected query: %q", mention.Query)
	}
}

func TestDetectFullName(t *testing.T) {
	d := NewMentionDetector("Akashvani", "@av")

	mention, ok := d.Detect("@Akashvani summarize our chat")
	if !ok {
		t.Fatal("Expected mention to be detected")
	}
	if mention.Token != "@Akashvani" {
		t.Errorf("Expected token @Akashvani, got %q", mention.Token)
	}
	if mention.Query != "summarize our chat" {
		t.Errorf("Unexpected query: %q", mention.Query)
	}
}

func TestDetectNoMention(t *testing.T) {
	d := NewMentionDetector("Akashvani", "@av")

	cases := []string{
		"hello everyone",
		"I heard it's raining in London today.",
		"ask @alice about it",
		"the average is 42", // contains "av" but not as a mention prefix
		"",
	}
	for _, text := range cases {
		if _, ok := d.Detect(text); ok {
			t.Errorf("Expected no mention in %q", text)
		}
	}
}

func TestDetectCaseSensitive(t *testing.T) {
	d := NewMentionDetector("Akashvani", "@av")

	if _, ok := d.Detect("@akashvani hello"); ok {
		t.Error("Expected lowercase full name to not match")
	}
	if _, ok := d.Detect("@AV hello"); ok {
		t.Error("Expected uppercase shorthand to not match")
	}
}

func TestDetectEmptyQuery(t *testing.T) {
	d := NewMentionDetector("Akashvani", "@av")

	mention, ok := d.Detect("@av")
	if !ok {
		t.Fatal("Expected bare mention to be detected")
	}
	if mention.Query != "" {
		t.Errorf("Expected empty query, got %q", mention.Query)
	}

	mention, ok = d.Detect("  @av   ")
	if !ok {
		t.Fatal("Expected padded bare mention to be detected")
	}
	if mention.Query != "" {
		t.Errorf("Expected empty query, got %q", mention.Query)
	}
}

func TestDetectFullNameWinsOverShorthand(t *testing.T) {
	// "@Akashvani" also starts with "@A"; with shorthand "@A" configured,
	// the full name must still win.
	d := NewMentionDetector("Akashvani", "@A")

	mention, ok := d.Detect("@Akashvani hello")
	if !ok {
		t.Fatal("Expected mention to be detected")
	}
	if mention.Token != "@Akashvani" {
		t.Errorf("Expected full name token to win, got %q", mention.Token)
	}
}

func TestDetectShorthandWithoutAt(t *testing.T) {
	// Shorthand configured without the "@" prefix gains one.
	d := NewMentionDetector("Akashvani", "av")

	mention, ok := d.Detect("@av ping")
	if !ok {
		t.Fatal("Expected mention to be detected")
	}
	if mention.Query != "ping" {
		t.Errorf("Unexpected query: %q", mention.Query)
	}
}
