package literal

import (
	"errors"
	"testing"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Value
	}{
		{"JSON null spelling", "null", NullValue()},
		{"Python null spelling", "None", NullValue()},
		{"Python true", "True", BoolValue(true)},
		{"JSON true", "true", BoolValue(true)},
		{"Python false", "False", BoolValue(false)},
		{"integer", "42", NumberValue(42)},
		{"negative integer", "-7", NumberValue(-7)},
		{"decimal", "3.5", NumberValue(3.5)},
		{"single quoted string", "'hello'", StringValue("hello")},
		{"double quoted string", `"hello"`, StringValue("hello")},
		{"escaped quote", `'it\'s'`, StringValue("it's")},
		{"newline escape", `"a\nb"`, StringValue("a\nb")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.src, err)
			}
			if got.Kind() != tt.want.Kind() || got.Text() != tt.want.Text() {
				t.Errorf("Parse(%q) = %v (kind %d), want %v (kind %d)",
					tt.src, got.Text(), got.Kind(), tt.want.Text(), tt.want.Kind())
			}
		})
	}
}

func TestParse_NumberLexemePreserved(t *testing.T) {
	got, err := Parse("300.0")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got.Text() != "300.0" {
		t.Errorf("Text() = %q, want the original lexeme %q", got.Text(), "300.0")
	}

	f, ok := got.Number()
	if !ok || f != 300 {
		t.Errorf("Number() = %v, %v, want 300, true", f, ok)
	}
}

func TestParse_List(t *testing.T) {
	got, err := Parse("[1, 'two', None, true,]")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	items, ok := got.Items()
	if !ok {
		t.Fatalf("expected a list, got kind %d", got.Kind())
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].Text() != "1" || items[1].Text() != "two" || !items[2].IsNull() {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestParse_Map(t *testing.T) {
	got, err := Parse("{'a': 1, \"b\": null, 'c': 'x',}")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	entries, ok := got.Entries()
	if !ok {
		t.Fatalf("expected a map, got kind %d", got.Kind())
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Source order must be preserved.
	if entries[0].Key != "a" || entries[1].Key != "b" || entries[2].Key != "c" {
		t.Errorf("entries out of source order: %v", entries)
	}

	b, ok := got.Get("b")
	if !ok || !b.IsNull() {
		t.Errorf("Get(b) = %v, %v, want null, true", b, ok)
	}
	if _, ok := got.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func TestParse_NestedWithCommentsAndWhitespace(t *testing.T) {
	src := `[
    # first record
    {'id': 1, 'tags': ['a', 'b']},
    {'id': 2, 'tags': []},  # second record
]`
	got, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	items, _ := got.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	tags, ok := items[0].Get("tags")
	if !ok {
		t.Fatal("first record missing tags")
	}
	inner, _ := tags.Items()
	if len(inner) != 2 {
		t.Errorf("expected 2 tags, got %d", len(inner))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"unterminated string", "'abc"},
		{"unterminated list", "[1, 2"},
		{"unterminated map", "{'a': 1"},
		{"unknown word", "nil"},
		{"bare key", "{a: 1}"},
		{"missing colon", "{'a' 1}"},
		{"trailing content", "1 2"},
		{"malformed number", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.src); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", tt.src, err)
			}
		})
	}
}

func TestValue_TextForAbsentValue(t *testing.T) {
	var zero Value
	if !zero.IsNull() {
		t.Error("zero Value is not null")
	}
	if zero.Text() != "" {
		t.Errorf("zero Value Text() = %q, want empty", zero.Text())
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	v := MapValue(
		MapEntry{Key: "id", Value: NumberValue(7)},
		MapEntry{Key: "name", Value: StringValue("x")},
		MapEntry{Key: "gone", Value: NullValue()},
		MapEntry{Key: "flags", Value: ListValue(BoolValue(true))},
	)

	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}

	want := `{"id":7,"name":"x","gone":null,"flags":[true]}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}
