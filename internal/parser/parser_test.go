package parser

import (
	"strings"
	"testing"

	"minicheck/internal/diag"
	"minicheck/internal/lexer"
	"minicheck/internal/source"
)

func parseSource(t *testing.T, input string) (Result, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.mini", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := ParseFile(lx, Options{Reporter: reporter})
	return result, bag
}

func requireOk(t *testing.T, input string) {
	t.Helper()
	result, bag := parseSource(t, input)
	if !result.Ok || bag.HasErrors() {
		t.Fatalf("expected %q to parse, diags: %v", input, bag.Items())
	}
}

func requireError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	result, bag := parseSource(t, input)
	if result.Ok {
		t.Fatalf("expected %q to fail", input)
	}
	first, ok := bag.FirstError()
	if !ok {
		t.Fatalf("no error diagnostic recorded for %q", input)
	}
	if first.Code != code {
		t.Fatalf("first error for %q = %v (%s), want %v",
			input, first.Code, first.Message, code)
	}
}

func TestValidPrograms(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"single assignment", "begin x = 1 + 2; end ."},
		{"several statements", "begin x = 1; y = x; z = x + y; end ."},
		{"parenthesized", "begin x = (1 + 2) * 3; end ."},
		{"nested parens", "begin x = ((1)); end ."},
		{"all operators", "begin x = 1 + 2 - 3 * 4 / 5; end ."},
		{"identifier operand", "begin a = b + c1; end ."},
		{"no space before period", "begin x = 1; end."},
		{"multiline", "begin\n  x = 1;\n  y = 2;\nend\n."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireOk(t, tc.input)
		})
	}
}

func TestEndToEndScenarios(t *testing.T) {
	// the lettered scenarios exercised by the CLI contract
	requireOk(t, "begin x = 1 + 2; end .")                       // A
	requireError(t, "begin x = 1 + 2 end .", diag.SynExpectSemicolon) // B
	requireOk(t, "begin x_ = (1 * 2); y = x_ + 3; end .")        // C
	requireError(t, "begin x__y = 1; end .", diag.SynConsecutiveUnderscore) // D
	requireError(t, "", diag.SynExpectBegin)                     // E
}

func TestMissingConstructs(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing begin", "x = 1; end .", diag.SynExpectBegin},
		{"missing end", "begin x = 1; .", diag.SynExpectEnd},
		{"missing period", "begin x = 1; end", diag.SynExpectPeriod},
		{"missing assign", "begin x 1; end .", diag.SynExpectAssign},
		{"missing rparen", "begin x = (1 + 2; end .", diag.SynExpectRParen},
		{"empty program", "begin end .", diag.SynExpectIdentifier},
		{"bad factor", "begin x = ;", diag.SynExpectFactor},
		{"operator without operand", "begin x = 1 + ; end .", diag.SynExpectFactor},
		{"trailing input", "begin x = 1; end . extra", diag.SynTrailingInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireError(t, tc.input, tc.code)
		})
	}
}

func TestIdentifierRules(t *testing.T) {
	accepted := []string{"a", "a1", "a_b", "a_", "a_1_", "a_1_b", "x_y_z"}
	for _, id := range accepted {
		t.Run("accept "+id, func(t *testing.T) {
			requireOk(t, "begin "+id+" = 1; end .")
		})
	}

	rejected := []struct {
		id   string
		code diag.Code
	}{
		{"_a", diag.SynExpectIdentifier},
		{"a__b", diag.SynConsecutiveUnderscore},
		{"a_1__", diag.SynConsecutiveUnderscore},
	}
	for _, tc := range rejected {
		t.Run("reject "+tc.id, func(t *testing.T) {
			requireError(t, "begin "+tc.id+" = 1; end .", tc.code)
		})
	}
}

func TestIdentifierRulesOnRightHandSide(t *testing.T) {
	requireOk(t, "begin x = a_b + c_; end .")
	requireError(t, "begin x = a__b; end .", diag.SynConsecutiveUnderscore)
}

func TestCommentTransparency(t *testing.T) {
	plain := "begin x = 1; end ."
	commented := "begin ~ comment\n x = 1; end ."
	requireOk(t, plain)
	requireOk(t, commented)
	requireOk(t, "~ leading comment\nbegin x = 1; ~ mid\nend .")
}

func TestPrecedenceShapesBothParse(t *testing.T) {
	requireOk(t, "begin x = 2 + 3 * 4; end .")
	requireOk(t, "begin x = (2 + 3) * 4; end .")
}

func TestLexemeOverflowIsTheOnlyError(t *testing.T) {
	input := "begin " + strings.Repeat("a", 99) + " = 1; end ."
	result, bag := parseSource(t, input)
	if result.Ok {
		t.Fatal("expected failure")
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != diag.LexTokenTooLong {
		t.Fatalf("first error = %+v", first)
	}
	var errs int
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			errs++
		}
	}
	if errs != 1 {
		t.Fatalf("expected exactly one error (first error wins), got %d: %v", errs, bag.Items())
	}
}

func TestUnknownCharSurfacesAsSyntaxError(t *testing.T) {
	// '#' is outside the operator table and folds into end of input, so the
	// parser sees EndOfInput where 'end' was required
	result, bag := parseSource(t, "begin x = 1; # end .")
	if result.Ok {
		t.Fatal("expected failure")
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != diag.SynExpectEnd {
		t.Fatalf("first error = %+v", first)
	}
	if !bag.HasWarnings() {
		t.Fatal("expected the LexUnknownChar warning alongside the error")
	}
}

func TestErrorNotesCarryLexerContext(t *testing.T) {
	_, bag := parseSource(t, "")
	first, ok := bag.FirstError()
	if !ok {
		t.Fatal("expected an error for empty input")
	}
	if len(first.Notes) != 3 {
		t.Fatalf("expected 3 context notes, got %d", len(first.Notes))
	}
	wantPrefixes := []string{"next token: EndOfInput", "next char: ' '", `lexeme: "EOF"`}
	for i, want := range wantPrefixes {
		if first.Notes[i].Msg != want {
			t.Errorf("note %d = %q, want %q", i, first.Notes[i].Msg, want)
		}
	}
}

func TestFirstErrorWins(t *testing.T) {
	// two violations: missing '=' and later missing ';'
	_, bag := parseSource(t, "begin x 1 y = 2 end .")
	var errs int
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			errs++
		}
	}
	if errs != 1 {
		t.Fatalf("expected a single error, got %d: %v", errs, bag.Items())
	}
}
