package peresil

import (
	"slices"
	"testing"
)

// parseError classifies by its code: codes below 0x80 are recoverable,
// the rest fatal.
type parseError struct {
	code int
}

func (e parseError) Recoverable() bool { return e.code < 0x80 }

func lit(s string, code int) Func[StringPoint, string, parseError] {
	return func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		return MapErr(pt.ConsumeLiteral(s), func(NoMatch) parseError { return parseError{code} })
	}
}

// counting wraps a parser and counts invocations, for verifying that
// short-circuiting really skips later candidates.
func counting(f Func[StringPoint, string, parseError], n *int) Func[StringPoint, string, parseError] {
	return func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		*n++
		return f(m, pt)
	}
}

func TestAlternateFirstSuccess(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("c")

	r := Alternate[string](m, pt).
		One(lit("a", 1)).
		One(lit("b", 2)).
		One(lit("c", 3)).
		Finish()
	r = Finish(m, r)

	want := SuccessAt[parseError](StringPoint{Offset: 1, Rest: ""}, "c")
	if r != want {
		t.Errorf("alternate = %+v, want %+v", r, want)
	}
}

func TestAlternateSkipsAfterSuccess(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("b")

	var third int
	r := Alternate[string](m, pt).
		One(lit("a", 1)).
		One(lit("b", 2)).
		One(counting(lit("c", 3), &third)).
		Finish()

	if v, ok := r.Status.Value(); !ok || v != "b" {
		t.Fatalf("alternate = %+v, want success %q", r, "b")
	}
	if third != 0 {
		t.Errorf("third candidate invoked %d times after a success", third)
	}
}

func TestAlternateRetriesFromStart(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("ab")

	// The first candidate consumes "a" before failing; the second must
	// still see the original input.
	first := func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		r := pt.ConsumeLiteral("a")
		return FailureAt[string](r.Point, parseError{1})
	}
	r := Alternate[string](m, pt).
		One(first).
		One(lit("ab", 2)).
		Finish()

	want := SuccessAt[parseError](StringPoint{Offset: 2, Rest: ""}, "ab")
	if r != want {
		t.Errorf("alternate = %+v, want %+v", r, want)
	}
}

func TestAlternateAllFailReportsFurthest(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("ab")

	// deep consumes "ab" before failing at offset 2; shallow fails at
	// offset 0 and is tried last. The reconciled failure must carry the
	// furthest point, not the last one tried.
	deep := func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		r := pt.ConsumeLiteral("ab")
		return FailureAt[string](r.Point, parseError{1})
	}
	r := Alternate[string](m, pt).
		One(deep).
		One(lit("x", 2)).
		Finish()
	r = Finish(m, r)

	want := FailureAt[string](StringPoint{Offset: 2, Rest: ""}, parseError{1})
	if r != want {
		t.Errorf("reconciled failure = %+v, want %+v", r, want)
	}
}

func TestAlternateFatalAborts(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("ab")

	fatal := func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		return FailureAt[string](pt, parseError{0x80})
	}
	var later int
	r := Alternate[string](m, pt).
		One(fatal).
		One(counting(lit("ab", 2), &later)).
		Finish()

	if later != 0 {
		t.Errorf("candidate after a fatal failure invoked %d times", later)
	}
	want := FailureAt[string](pt, parseError{0x80})
	if r != want {
		t.Errorf("alternate = %+v, want %+v", r, want)
	}
}

func TestAlternateFatalKeepsFailureSite(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("abc")

	// Fails fatally after consuming "ab"; the failure must surface from
	// offset 2, not from the start.
	fatal := func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		r := pt.ConsumeLiteral("ab")
		return FailureAt[string](r.Point, parseError{0xFF})
	}
	r := Alternate[string](m, pt).One(fatal).Finish()

	want := FailureAt[string](StringPoint{Offset: 2, Rest: "c"}, parseError{0xFF})
	if r != want {
		t.Errorf("alternate = %+v, want %+v", r, want)
	}
}

func TestZeroOrMore(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("aaa")

	r := ZeroOrMore(m, pt, lit("a", 1))

	values, ok := r.Status.Value()
	if !ok {
		t.Fatalf("zero-or-more = %+v, want success", r)
	}
	if !slices.Equal(values, []string{"a", "a", "a"}) {
		t.Errorf("values = %v, want [a a a]", values)
	}
	if want := (StringPoint{Offset: 3, Rest: ""}); r.Point != want {
		t.Errorf("point = %+v, want %+v", r.Point, want)
	}
}

func TestZeroOrMoreEmpty(t *testing.T) {
	for _, input := range []string{"", "bbb"} {
		m := NewMaster[StringPoint, parseError]()
		pt := NewStringPoint(input)

		r := ZeroOrMore(m, pt, lit("a", 1))

		values, ok := r.Status.Value()
		if !ok {
			t.Fatalf("input %q: zero-or-more = %+v, want success", input, r)
		}
		if len(values) != 0 {
			t.Errorf("input %q: values = %v, want none", input, values)
		}
		if r.Point != pt {
			t.Errorf("input %q: point = %+v, want unchanged %+v", input, r.Point, pt)
		}
	}
}

func TestZeroOrMoreFatalDiscardsPartials(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("aab")

	// Matches "a" while it can, then fails fatally on anything else.
	f := func(m *ParseMaster[StringPoint, parseError], pt StringPoint) Progress[StringPoint, string, parseError] {
		if r := pt.ConsumeLiteral("a"); r.Status.IsSuccess() {
			return MapErr(r, func(NoMatch) parseError { return parseError{} })
		}
		return FailureAt[string](pt, parseError{0x81})
	}
	r := ZeroOrMore(m, pt, f)

	if r.Status.IsSuccess() {
		t.Fatalf("zero-or-more = %+v, want fatal failure", r)
	}
	if err, _ := r.Status.Err(); err != (parseError{0x81}) {
		t.Errorf("error = %+v, want the fatal error", err)
	}
	if want := (StringPoint{Offset: 2, Rest: "b"}); r.Point != want {
		t.Errorf("point = %+v, want the failure site %+v", r.Point, want)
	}
}

func TestFinishKeepsSuccess(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	m.recordFailure(StringPoint{Offset: 9, Rest: ""}, parseError{1})

	r := SuccessAt[parseError](StringPoint{Offset: 3, Rest: ""}, "abc")
	if got := Finish(m, r); got != r {
		t.Errorf("Finish rewrote a success: %+v", got)
	}
}

func TestFinishTieFavorsResult(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	m.recordFailure(StringPoint{Offset: 2, Rest: "c"}, parseError{1})

	r := FailureAt[string](StringPoint{Offset: 2, Rest: "c"}, parseError{2})
	got := Finish(m, r)
	if err, _ := got.Status.Err(); err != (parseError{2}) {
		t.Errorf("Finish = %+v, want the final result's error on a tie", got)
	}
}

func TestSequential(t *testing.T) {
	m := NewMaster[StringPoint, parseError]()
	pt := NewStringPoint("abc")

	type abc struct{ a, b, c string }
	all := func(pt StringPoint) Progress[StringPoint, abc, parseError] {
		ra := MapErr(pt.ConsumeLiteral("a"), func(NoMatch) parseError { return parseError{1} })
		return Then(ra, func(pt StringPoint, a string) Progress[StringPoint, abc, parseError] {
			rb := MapErr(pt.ConsumeLiteral("b"), func(NoMatch) parseError { return parseError{2} })
			return Then(rb, func(pt StringPoint, b string) Progress[StringPoint, abc, parseError] {
				rc := MapErr(pt.ConsumeLiteral("c"), func(NoMatch) parseError { return parseError{3} })
				return Then(rc, func(pt StringPoint, c string) Progress[StringPoint, abc, parseError] {
					return SuccessAt[parseError](pt, abc{a, b, c})
				})
			})
		})
	}

	r := Finish(m, all(pt))
	want := SuccessAt[parseError](StringPoint{Offset: 3, Rest: ""}, abc{"a", "b", "c"})
	if r != want {
		t.Errorf("sequential parse = %+v, want %+v", r, want)
	}
}
