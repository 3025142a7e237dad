package jsoncursor

import (
	"fmt"
	"testing"
)

func TestTagString(t *testing.T) {
	for _, test := range []struct {
		input    Tag
		expected string
	}{
		{Invalid, "invalid"},
		{Null, "null"},
		{Boolean, "boolean"},
		{Integer, "integer"},
		{Double, "double"},
		{String, "string"},
		{Object, "object"},
		{Array, "array"},
		{Pair, "pair"},
		{Tag(1000), "unknown"},
		{Tag(-1), "unknown"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			if actual := test.input.String(); actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected Tag
	}{
		{`null`, Null},
		{`true`, Boolean},
		{`false`, Boolean},
		{`"hi"`, String},
		{`{}`, Object},
		{`[]`, Array},
		{`5`, Integer},
		{`-5`, Integer},
		{`5.0`, Double},
		{`5e3`, Integer}, // exponent-only forms classify as INTEGER (spec invariant 2)
		{`  5  `, Integer},
		{``, Invalid},
		{`   `, Invalid},
		{`?`, Invalid},
		{`-`, Invalid},
	} {
		t.Run(test.input, func(t *testing.T) {
			actual := ParseString(test.input).Type()
			if actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestIsNull(t *testing.T) {
	if !ParseString(`null`).IsNull() {
		t.Error("null should report IsNull")
	}
	if !ParseString(``).IsNull() {
		t.Error("INVALID should report IsNull")
	}
	if ParseString(`5`).IsNull() {
		t.Error("integer should not report IsNull")
	}
}

func TestIsTrue(t *testing.T) {
	if !ParseString(`true`).IsTrue() {
		t.Error("true should report IsTrue")
	}
	if ParseString(`false`).IsTrue() {
		t.Error("false should not report IsTrue")
	}
	if ParseString(`5`).IsTrue() {
		t.Error("integer should not report IsTrue")
	}
}

// TestInvalidChaining verifies spec invariant 2: once a navigation
// chain hits INVALID, every subsequent step also stays INVALID.
func TestInvalidChaining(t *testing.T) {
	c := ParseString(`{"a": 1}`).MoveKey("missing")
	if c.Type() != Invalid {
		t.Fatalf("expected INVALID, got %v", c.Type())
	}
	chained := c.MoveKey("x").MoveIndex(0).MoveNext().MovePairValue()
	if chained.Type() != Invalid {
		t.Errorf("expected chained navigation to stay INVALID, got %v", chained.Type())
	}
	if _, ok := chained.Int(); ok {
		t.Error("expected Int() to fail on INVALID cursor")
	}
}

func TestMaxDepthGuard(t *testing.T) {
	open, close := "", ""
	for i := 0; i < 5; i++ {
		open += "["
		close += "]"
	}
	doc := open + "1" + close

	shallow := Parser{MaxDepth: 5}.Parse([]byte(doc))
	if shallow.Type() != Array {
		t.Fatalf("expected ARRAY at exactly MaxDepth, got %v", shallow.Type())
	}
	if _, ok := shallow.Raw(); !ok {
		t.Error("expected Raw() to succeed at exactly MaxDepth")
	}

	tooDeep := Parser{MaxDepth: 3}.Parse([]byte(doc))
	if _, ok := tooDeep.Raw(); ok {
		t.Error("expected Raw() to fail past MaxDepth")
	}
}
