package weather

import "testing"

func TestCodeDescriptionBuckets(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{0, "Clear sky"},
		{1, "Partly cloudy"},
		{3, "Partly cloudy"},
		{4, "Foggy"},
		{45, "Foggy"},
		{49, "Foggy"},
		{50, "Rainy"},
		{69, "Rainy"},
		{70, "Snowy"},
		{79, "Snowy"},
		{80, "Thunderstorm"},
		{99, "Thunderstorm"},
		{100, "Unknown"},
		{150, "Unknown"},
		{-5, "Unknown"},
		{-1, "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.code.Description(); got != tc.want {
			t.Errorf("Code(%d).Description() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestCodeEmojiBuckets(t *testing.T) {
	const (
		sun         = "\u2600\ufe0f"
		sunCloud    = "\u26c5"
		fog         = "\U0001f32b\ufe0f"
		rain        = "\U0001f327\ufe0f"
		snow        = "\u2744\ufe0f"
		storm       = "\u26c8\ufe0f"
		thermometer = "\U0001f321\ufe0f"
	)

	cases := []struct {
		code Code
		want string
	}{
		{0, sun},
		{2, sunCloud},
		{45, fog},
		{61, rain},
		{75, snow},
		{95, storm},
		{100, thermometer},
		{150, thermometer},
		{-5, thermometer},
	}

	for _, tc := range cases {
		if got := tc.code.Emoji(); got != tc.want {
			t.Errorf("Code(%d).Emoji() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

// Every code lands in exactly one bucket and description and emoji agree on it.
func TestCodeClassificationIsTotal(t *testing.T) {
	emojiFor := map[string]string{}
	for c := Code(-200); c <= 300; c++ {
		desc := c.Description()
		emoji := c.Emoji()
		if prev, ok := emojiFor[desc]; ok && prev != emoji {
			t.Fatalf("Code(%d): description %q paired with %q and %q", c, desc, prev, emoji)
		}
		emojiFor[desc] = emoji
		if c.Description() != desc || c.Emoji() != emoji {
			t.Fatalf("Code(%d) is not deterministic", c)
		}
	}
	if len(emojiFor) != 7 {
		t.Fatalf("expected 6 buckets plus default, got %d: %v", len(emojiFor), emojiFor)
	}
}

func TestCodeCondition(t *testing.T) {
	if got := Code(0).Condition(); got != ConditionClear {
		t.Fatalf("expected %q, got %q", ConditionClear, got)
	}
	if got := Code(82).Condition(); got != ConditionStorm {
		t.Fatalf("expected %q, got %q", ConditionStorm, got)
	}
	if got := Code(-5).Condition(); got != ConditionUnknown {
		t.Fatalf("expected %q, got %q", ConditionUnknown, got)
	}
}
