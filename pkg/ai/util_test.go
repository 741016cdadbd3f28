package ai

import "testing"

type sampleOut struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestUnmarshalFlexible_StandardJSON(t *testing.T) {
	var out sampleOut
	if err := UnmarshalFlexible(`{"name": "python", "count": 3}`, &out); err != nil {
		t.Fatalf("UnmarshalFlexible() failed: %v", err)
	}
	if out.Name != "python" || out.Count != 3 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_DoubleEncoded(t *testing.T) {
	var out sampleOut
	input := `"{\"name\": \"python\", \"count\": 3}"`
	if err := UnmarshalFlexible(input, &out); err != nil {
		t.Fatalf("UnmarshalFlexible() failed on double-encoded input: %v", err)
	}
	if out.Name != "python" || out.Count != 3 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_MarkdownFences(t *testing.T) {
	var out sampleOut
	input := "```json\n{\"name\": \"python\", \"count\": 3}\n```"
	if err := UnmarshalFlexible(input, &out); err != nil {
		t.Fatalf("UnmarshalFlexible() failed on fenced input: %v", err)
	}
	if out.Name != "python" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_RepairsMalformedJSON(t *testing.T) {
	var out sampleOut
	// Trailing comma and unquoted key, both common model mistakes.
	input := `{name: "python", "count": 3,}`
	if err := UnmarshalFlexible(input, &out); err != nil {
		t.Fatalf("UnmarshalFlexible() failed on repairable input: %v", err)
	}
	if out.Name != "python" || out.Count != 3 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestUnmarshalFlexible_RejectsGarbage(t *testing.T) {
	var out sampleOut
	if err := UnmarshalFlexible("I cannot answer that.", &out); err == nil {
		t.Fatalf("UnmarshalFlexible() should fail on non-JSON input")
	}
}
