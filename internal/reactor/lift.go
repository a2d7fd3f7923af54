package reactor

// Lift normalises an argument to a combinator factory: a reactor is
// returned unchanged, a plain value is wrapped in a ConstantReactor (§4.6).
// Every factory in this package applies Lift to each of its arguments, so
// callers may pass reactors and plain values interchangeably (the "lift
// law" in the testable properties: MakeFunction1(f, v) and
// MakeFunction1(f, MakeConstant(v)) are observationally equal).
func Lift[T any](x any) Reactor[T] {
	if r, ok := x.(Reactor[T]); ok {
		return r
	}
	return MakeConstant(x.(T))
}

// LiftValue is the typed convenience form of Lift for callers who already
// know they are not passing a reactor.
func LiftValue[T any](v T) Reactor[T] {
	return MakeConstant(v)
}
