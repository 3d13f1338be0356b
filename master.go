package peresil

// Func is the universal parsing function shape: given the driver and a
// starting point, attempt one parse and report the outcome. The driver is
// threaded through so nested alternations and repetitions share the same
// furthest-failure tracking.
type Func[P Point, T any, E Recoverable] func(m *ParseMaster[P, E], pt P) Progress[P, T, E]

// ParseMaster tracks the furthest-advanced failure seen across every
// attempt of one parse, so that when parsing ultimately fails the caller
// learns the deepest point reached rather than whichever branch happened
// to run last.
//
// Create one per parse with NewMaster and pass it through every
// combinator call. A ParseMaster must not be shared between concurrent
// parses; separate parses over the same input each get their own.
type ParseMaster[P Point, E Recoverable] struct {
	failurePoint P
	failureErr   E
	failed       bool
}

// NewMaster returns a driver with no failure recorded yet.
func NewMaster[P Point, E Recoverable]() *ParseMaster[P, E] {
	return &ParseMaster[P, E]{}
}

// recordFailure keeps whichever failure has advanced further into the
// input. Called for every failure the driver observes, including ones a
// later alternative makes irrelevant.
func (m *ParseMaster[P, E]) recordFailure(pt P, err E) {
	if !m.failed || pt.Pos() > m.failurePoint.Pos() {
		m.failurePoint = pt
		m.failureErr = err
		m.failed = true
	}
}

// Alternation tries candidate parsers in registration order from a fixed
// starting point, keeping the first success. Built with Alternate,
// populated with One, resolved with Finish.
type Alternation[P Point, T any, E Recoverable] struct {
	master  *ParseMaster[P, E]
	start   P
	result  Progress[P, T, E]
	settled bool
}

// Alternate begins an alternation at start. The success type cannot be
// inferred from later One calls, so it is the explicit type argument:
//
//	peresil.Alternate[Node](m, pt).One(f1).One(f2).Finish()
//
// Finish on an alternation with no registered candidates fails at start
// with the zero failure value.
func Alternate[T any, P Point, E Recoverable](m *ParseMaster[P, E], start P) *Alternation[P, T, E] {
	var zero E
	return &Alternation[P, T, E]{
		master: m,
		start:  start,
		result: FailureAt[T](start, zero),
	}
}

// One registers and immediately tries the next candidate. Once a
// candidate has succeeded, or one has failed fatally, later candidates
// are not invoked. Every candidate runs from the original starting point,
// never from a failed attempt's point, and every failure is recorded into
// the driver's furthest-failure tracking before it is classified.
func (a *Alternation[P, T, E]) One(f Func[P, T, E]) *Alternation[P, T, E] {
	if a.settled {
		return a
	}
	r := f(a.master, a.start)
	if r.Status.IsSuccess() {
		a.result = r
		a.settled = true
		return a
	}
	err, _ := r.Status.Err()
	a.master.recordFailure(r.Point, err)
	if !err.Recoverable() {
		a.result = r
		a.settled = true
		return a
	}
	a.result = FailureAt[T](a.start, err)
	return a
}

// Finish resolves the alternation: the first success, a fatal failure at
// its own site, or, with every candidate exhausted, a failure at the
// starting point carrying the last recoverable error. The driver's
// Finish may later substitute a further-advanced failure for diagnostics.
func (a *Alternation[P, T, E]) Finish() Progress[P, T, E] {
	return a.result
}

// ZeroOrMore applies f repeatedly, collecting each success, until f
// fails. A recoverable failure ends the loop successfully with the values
// gathered so far (possibly none) and the point from before the failing
// attempt. A fatal failure discards the partial result and propagates
// from the failure site.
//
// f must consume input on success; the cursor primitives guarantee this
// by treating zero-length consumption as failure.
func ZeroOrMore[P Point, T any, E Recoverable](m *ParseMaster[P, E], start P, f Func[P, T, E]) Progress[P, []T, E] {
	var values []T
	cur := start
	for {
		r := f(m, cur)
		if v, ok := r.Status.Value(); ok {
			values = append(values, v)
			cur = r.Point
			continue
		}
		err, _ := r.Status.Err()
		m.recordFailure(r.Point, err)
		if !err.Recoverable() {
			return FailureAt[[]T](r.Point, err)
		}
		return SuccessAt[E](cur, values)
	}
}

// Finish reconciles the top-level result with the tracked furthest
// failure. A success is returned unchanged. A failure is replaced by the
// tracked one only when that one advanced strictly further; ties favor
// the result the parser actually produced.
func Finish[P Point, T any, E Recoverable](m *ParseMaster[P, E], r Progress[P, T, E]) Progress[P, T, E] {
	if r.Status.IsSuccess() || !m.failed {
		return r
	}
	if m.failurePoint.Pos() > r.Point.Pos() {
		return FailureAt[T](m.failurePoint, m.failureErr)
	}
	return r
}
