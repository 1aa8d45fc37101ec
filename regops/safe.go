package regops

import "golang.org/x/exp/constraints"

func SafeAdd[I constraints.Unsigned](a, b I) (I, error) {
	c := a + b
	if c < a {
		return 0, ErrArithmeticOverflow
	}
	return c, nil
}

func SafeSub[I constraints.Unsigned](a, b I) (I, error) {
	if b > a {
		return 0, ErrArithmeticOverflow
	}
	return a - b, nil
}

func SafeMul[I constraints.Unsigned](a, b I) (I, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, ErrArithmeticOverflow
	}
	return c, nil
}

func SafeDiv[I constraints.Unsigned](a, b I) (I, error) {
	if b == 0 {
		return 0, ErrArithmeticOverflow
	}
	return a / b, nil
}
