package fixture

import "testing"

func TestParseAndMarshalRoundTrip(t *testing.T) {
	data := []byte(`{
		"states": ["q0", "q1"],
		"alphabet": ["a", "b"],
		"initial": "q0",
		"accepting": ["q1"],
		"transitions": [
			{"from": "q0", "symbol": "a", "to": "q1"},
			{"from": "q0", "symbol": "b", "to": "q0"},
			{"from": "q1", "symbol": "a", "to": "q1"},
			{"from": "q1", "symbol": "b", "to": "q1"}
		]
	}`)

	a, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.States) != 2 || a.Initial != "q0" || len(a.Accepting) != 1 {
		t.Fatalf("unexpected parse result: %+v", a)
	}
	if len(a.Transitions) != 4 {
		t.Fatalf("expected 4 transitions, got %d", len(a.Transitions))
	}

	out, err := Marshal(a, false)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	roundTripped, err := Parse(out)
	if err != nil {
		t.Fatalf("unexpected round-trip parse error: %v", err)
	}
	if len(roundTripped.States) != len(a.States) || len(roundTripped.Transitions) != len(a.Transitions) {
		t.Fatalf("round trip lost data: %+v vs %+v", roundTripped, a)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}
