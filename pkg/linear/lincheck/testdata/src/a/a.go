package a

import "linear"

func double(x int) int { return x * 2 }

func discardsExpressionResult() {
	linear.New(5)                     // want `result of linear.New is dropped without being consumed`
	linear.Map(linear.New(1), double) // want `result of linear.Map is dropped without being consumed`
}

func discardsTupleResult() {
	linear.Splice(linear.New(3)) // want `result of linear.Splice is dropped without being consumed`
}

func assignsToBlank() {
	_ = linear.New("x") // want `linear value assigned to blank identifier is dropped without being consumed`

	a, _ := linear.Splice(linear.New(3)) // want `linear value assigned to blank identifier is dropped without being consumed`
	_ = a.IntoInner()
}

func consumesProperly() int {
	l := linear.Map(linear.New(2), double)
	return l.IntoInner()
}

func destroysProperly() {
	linear.New(1).Destroy()
}

func nonLinearDiscardIsFine() {
	double(2)
	_ = double(3)
}
