package utils

import "testing"

func TestExtractStateTagFullGrammar(t *testing.T) {
	tag, release, cleaned, found := ExtractStateTag("好啊……[P+2 A+1.5 D-0.2 L+10]")
	if !found {
		t.Fatalf("expected tag to be found")
	}
	if release {
		t.Fatalf("expected no release marker")
	}
	if tag.Pleasure != 2 || tag.Arousal != 1.5 {
		t.Fatalf("unexpected mood deltas: %+v", tag)
	}
	if !tag.HasDominance || tag.Dominance != -0.2 {
		t.Fatalf("unexpected dominance delta: %+v", tag)
	}
	if !tag.HasLust || tag.Lust != 10 {
		t.Fatalf("unexpected lust delta: %+v", tag)
	}
	if cleaned != "好啊……" {
		t.Fatalf("unexpected cleaned text: %q", cleaned)
	}
}

func TestExtractStateTagOptionalComponents(t *testing.T) {
	tag, _, _, found := ExtractStateTag("[P-1 A+3]")
	if !found {
		t.Fatalf("expected tag to be found")
	}
	if tag.HasDominance || tag.HasLust {
		t.Fatalf("expected no optional components: %+v", tag)
	}

	tag, _, _, found = ExtractStateTag("[P+1 A-2 L+5]")
	if !found {
		t.Fatalf("expected tag to be found")
	}
	if tag.HasDominance {
		t.Fatalf("expected no dominance component: %+v", tag)
	}
	if !tag.HasLust || tag.Lust != 5 {
		t.Fatalf("unexpected lust delta: %+v", tag)
	}
}

func TestExtractStateTagReleaseMarker(t *testing.T) {
	_, release, cleaned, found := ExtractStateTag("到了……[RELEASE] [P+5 A-3 D-1 L-70]")
	if !release {
		t.Fatalf("expected release marker")
	}
	if !found {
		t.Fatalf("expected tag alongside the marker")
	}
	if cleaned != "到了……" {
		t.Fatalf("unexpected cleaned text: %q", cleaned)
	}

	// A bare marker with no tag still fires.
	_, release, _, found = ExtractStateTag("[release]")
	if !release || found {
		t.Fatalf("expected marker only, got release=%v found=%v", release, found)
	}
}

func TestExtractStateTagClampsAbsurdMagnitudes(t *testing.T) {
	tag, _, _, found := ExtractStateTag("[P+999 A-999 D+50 L-500]")
	if !found {
		t.Fatalf("expected tag to be found")
	}
	if tag.Pleasure != 20 || tag.Arousal != -20 {
		t.Fatalf("expected mood deltas clamped to ±20, got %+v", tag)
	}
	if tag.Dominance != 20 {
		t.Fatalf("expected dominance clamped to 20, got %.1f", tag.Dominance)
	}
	if tag.Lust != -100 {
		t.Fatalf("expected lust clamped to -100, got %.1f", tag.Lust)
	}
}

func TestExtractStateTagIgnoresGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"纯文本回复，没有标签。",
		"[P+x A+y]",
		"[A+1 P+2]",
		"[P+1]",
	} {
		tag, release, _, found := ExtractStateTag(raw)
		if found || release {
			t.Fatalf("%q: expected nothing parsed, got tag=%+v release=%v", raw, tag, release)
		}
	}
}

func TestExtractStateTagCaseAndSpacing(t *testing.T) {
	tag, _, cleaned, found := ExtractStateTag("嗯。 [ p +1  a -2   d +0.1 ]")
	if !found {
		t.Fatalf("expected lenient grammar to match")
	}
	if tag.Pleasure != 1 || tag.Arousal != -2 || tag.Dominance != 0.1 {
		t.Fatalf("unexpected deltas: %+v", tag)
	}
	if cleaned != "嗯。" {
		t.Fatalf("unexpected cleaned text: %q", cleaned)
	}
}
