package analyzer

import (
	"reflect"
	"testing"
)

func TestSegmentSentences(t *testing.T) {
	seg := Segment("Hello world. How are you today? Great!")

	if len(seg.Sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(seg.Sentences), seg.Sentences)
	}

	wantCounts := []int{2, 4, 1}
	for i, s := range seg.Sentences {
		if s.WordCount != wantCounts[i] {
			t.Fatalf("sentence %d: expected %d words, got %d (%q)", i, wantCounts[i], s.WordCount, s.Text)
		}
	}
}

func TestSegmentDoesNotSplitDecimals(t *testing.T) {
	seg := Segment("The value of pi is 3.14 exactly.")

	if len(seg.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %+v", len(seg.Sentences), seg.Sentences)
	}
}

func TestSegmentTrailingTextWithoutTerminator(t *testing.T) {
	seg := Segment("First one. Second without an end")

	if len(seg.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(seg.Sentences))
	}
	if seg.Sentences[1].Text != "Second without an end" {
		t.Fatalf("unexpected trailing sentence: %q", seg.Sentences[1].Text)
	}
}

func TestSegmentCollapsesRepeatedTerminators(t *testing.T) {
	seg := Segment("Wait... what? No way!")

	if len(seg.Sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(seg.Sentences), seg.Sentences)
	}
}

func TestSegmentWords(t *testing.T) {
	seg := Segment("Don't STOP-now, it's 2024!")

	want := []string{"don't", "stop", "now", "it's", "2024"}
	if !reflect.DeepEqual(seg.Words, want) {
		t.Fatalf("expected words %v, got %v", want, seg.Words)
	}
}

func TestSegmentParagraphs(t *testing.T) {
	text := "First paragraph line one.\nStill the first paragraph.\n\nSecond paragraph here.\n\n\n\nThird."
	seg := Segment(text)

	if len(seg.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %+v", len(seg.Paragraphs), seg.Paragraphs)
	}
	if seg.Paragraphs[0].WordCount != 8 {
		t.Fatalf("expected 8 words in first paragraph, got %d", seg.Paragraphs[0].WordCount)
	}
}

func TestSegmentBlankLineWithSpaces(t *testing.T) {
	seg := Segment("one block\n   \nanother block")

	if len(seg.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %+v", len(seg.Paragraphs), seg.Paragraphs)
	}
}

func TestSegmentEmptyInputs(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\t  \n"} {
		seg := Segment(text)
		if len(seg.Sentences) != 0 || len(seg.Words) != 0 || len(seg.Paragraphs) != 0 {
			t.Fatalf("expected empty segmentation for %q, got %+v", text, seg)
		}
	}
}
