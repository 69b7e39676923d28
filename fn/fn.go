// Package fn provides small higher-order building blocks: identity, constant,
// argument flipping, partial application, composition, variadic adapters,
// accessor builders, and memoization.
package fn

// Identity returns its argument unchanged.
func Identity[T any](v T) T { return v }

// Constant returns a niladic function that always yields v.
func Constant[T any](v T) func() T {
	return func() T { return v }
}

// Flip swaps the parameter order of a binary function.
func Flip[I1, I2, O any](fn func(I1, I2) O) func(I2, I1) O {
	return func(i2 I2, i1 I1) O {
		return fn(i1, i2)
	}
}

// Partial1I2 fixes the first argument of a binary function.
func Partial1I2[I1, I2, O any](fn func(I1, I2) O, i1 I1) func(I2) O {
	return func(i2 I2) O {
		return fn(i1, i2)
	}
}

// Partial1I3 fixes the first argument of a ternary function.
func Partial1I3[I1, I2, I3, O any](fn func(I1, I2, I3) O, i1 I1) func(I2, I3) O {
	return func(i2 I2, i3 I3) O {
		return fn(i1, i2, i3)
	}
}

// Partial2I3 fixes the first two arguments of a ternary function.
func Partial2I3[I1, I2, I3, O any](fn func(I1, I2, I3) O, i1 I1, i2 I2) func(I3) O {
	return func(i3 I3) O {
		return fn(i1, i2, i3)
	}
}

// Compose2 is right-to-left composition: Compose2(f, g)(x) == f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 is right-to-left composition of three functions.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Pipe2 is left-to-right composition: Pipe2(f, g)(x) == g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 is left-to-right composition of three functions.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Compose chains endomorphisms right-to-left; the last one runs first.
// With no functions it is Identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe chains endomorphisms left-to-right; the first one runs first.
// With no functions it is Identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Spread adapts a variadic function to take its arguments as a slice.
func Spread[I, O any](fn func(...I) O) func([]I) O {
	return func(args []I) O {
		return fn(args...)
	}
}

// Unary restricts a variadic function to exactly one argument.
func Unary[I, O any](fn func(...I) O) func(I) O {
	return func(i I) O {
		return fn(i)
	}
}

// PropOf builds an accessor reading key from a map.
// Missing keys yield the zero value.
func PropOf[K comparable, V any](key K) func(map[K]V) V {
	return func(m map[K]V) V {
		return m[key]
	}
}

// At builds an accessor reading index i from a slice.
// Out-of-range indexes yield the zero value.
func At[T any](i int) func([]T) T {
	return func(s []T) T {
		if i < 0 || i >= len(s) {
			var zero T
			return zero
		}
		return s[i]
	}
}
