package strnat

import "testing"

type CaseTest struct {
	in, out string
}

var camelToSnakeTests = []CaseTest{
	{"", ""},
	{"myVarName", "my_var_name"},
	{"MyVarName", "my_var_name"},
	{"alllower", "alllower"},
	{"HTTPServer", "h_t_t_p_server"}, // every interior uppercase splits
	{"a1B2", "a1_b2"},
	{"éclairCount", "éclair_count"},
}

func TestCamelToSnake(t *testing.T) {
	for _, test := range camelToSnakeTests {
		got := CamelToSnake(test.in)
		if got != test.out {
			t.Errorf("CamelToSnake(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var snakeToCamelTests = []CaseTest{
	{"", ""},
	{"my_var_name", "myVarName"},
	{"_foo", "Foo"},
	{"my_", "my_"},  // trailing delimiter has nothing to uppercase
	{"a__b", "a_b"}, // first delimiter consumes the second
	{"a_1", "a1"},
}

func TestSnakeToCamel(t *testing.T) {
	for _, test := range snakeToCamelTests {
		got := SnakeToCamel(test.in)
		if got != test.out {
			t.Errorf("SnakeToCamel(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var kebabToCamelTests = []CaseTest{
	{"", ""},
	{"my-var-name", "myVarName"},
	{"-foo", "Foo"},
	{"my-", "my-"},
	{"list-item-2", "listItem2"},
}

func TestKebabToCamel(t *testing.T) {
	for _, test := range kebabToCamelTests {
		got := KebabToCamel(test.in)
		if got != test.out {
			t.Errorf("KebabToCamel(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

// Converting to camelCase and back is the identity for snake_case inputs
// without leading underscores or digit-adjacent boundaries.
func TestSnakeCamelRoundTrip(t *testing.T) {
	for _, s := range []string{"my_var_name", "foo", "a_b_c", "one_two"} {
		if got := CamelToSnake(SnakeToCamel(s)); got != s {
			t.Errorf("CamelToSnake(SnakeToCamel(%q)) = %q; want: %q", s, got, s)
		}
	}
	for _, s := range []string{"myVarName", "foo", "aBC"} {
		if got := SnakeToCamel(CamelToSnake(s)); got != s {
			t.Errorf("SnakeToCamel(CamelToSnake(%q)) = %q; want: %q", s, got, s)
		}
	}
}

var humanizeTests = []CaseTest{
	{"", ""},
	{"fooBar42", "foobar 42"},
	{"user_id", "user id"},
	{"list-item-2", "list item 2"},
	{"  spaced  out  ", "spaced out"},
	{"42", "42"},
	{"---", ""},
}

func TestHumanize(t *testing.T) {
	for _, test := range humanizeTests {
		got := Humanize(test.in)
		if got != test.out {
			t.Errorf("Humanize(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var capitalizeTests = []CaseTest{
	{"", ""},
	{"a", "A"},
	{"hello", "Hello"},
	{"hELLO", "Hello"},
	{"éclair", "Éclair"},
	{"123abc", "123abc"},
}

func TestCapitalize(t *testing.T) {
	for _, test := range capitalizeTests {
		got := Capitalize(test.in)
		if got != test.out {
			t.Errorf("Capitalize(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var capitalizeWordsTests = []CaseTest{
	{"", ""},
	{"hello world", "Hello World"},
	{"HELLO WORLD", "Hello World"},
	{"foo  bar", "Foo  Bar"}, // runs of spaces preserved
	{"one", "One"},
}

func TestCapitalizeWords(t *testing.T) {
	for _, test := range capitalizeWordsTests {
		got := CapitalizeWords(test.in)
		if got != test.out {
			t.Errorf("CapitalizeWords(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}
