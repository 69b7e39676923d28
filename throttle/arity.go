package throttle

import "time"

// Args2 groups the arguments of a two-parameter function so they can be
// captured as one pending value.
type Args2[I1, I2 any] struct {
	I1 I1
	I2 I2
}

// Args3 groups the arguments of a three-parameter function.
type Args3[I1, I2, I3 any] struct {
	I1 I1
	I2 I2
	I3 I3
}

// ThrottleI0 throttles a niladic function. The returned closure has the same
// shape as fn; the Limiter is the control handle for Flush and Clear.
func ThrottleI0(fn func(), delay time.Duration, opts ...Option) (func(), *Limiter[struct{}], error) {
	limiter, err := New(
		func(struct{}) { fn() },
		delay,
		opts...,
	)
	if err != nil {
		return nil, nil, err
	}
	return func() { limiter.Call(struct{}{}) }, limiter, nil
}

// ThrottleI1 throttles a one-parameter function.
func ThrottleI1[I1 any](fn func(I1), delay time.Duration, opts ...Option) (func(I1), *Limiter[I1], error) {
	limiter, err := New(fn, delay, opts...)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1) { limiter.Call(i1) }, limiter, nil
}

// ThrottleI2 throttles a two-parameter function.
func ThrottleI2[I1, I2 any](fn func(I1, I2), delay time.Duration, opts ...Option) (func(I1, I2), *Limiter[Args2[I1, I2]], error) {
	limiter, err := New(
		func(a Args2[I1, I2]) { fn(a.I1, a.I2) },
		delay,
		opts...,
	)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1, i2 I2) { limiter.Call(Args2[I1, I2]{i1, i2}) }, limiter, nil
}

// ThrottleI3 throttles a three-parameter function.
func ThrottleI3[I1, I2, I3 any](fn func(I1, I2, I3), delay time.Duration, opts ...Option) (func(I1, I2, I3), *Limiter[Args3[I1, I2, I3]], error) {
	limiter, err := New(
		func(a Args3[I1, I2, I3]) { fn(a.I1, a.I2, a.I3) },
		delay,
		opts...,
	)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1, i2 I2, i3 I3) { limiter.Call(Args3[I1, I2, I3]{i1, i2, i3}) }, limiter, nil
}
