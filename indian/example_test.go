package indian_test

import (
	"fmt"

	"github.com/katalvlaran/coursework/indian"
)

func ExampleFormat() {
	for _, x := range []float64{123456.7891, 1234567890.123, -123456.78, 123} {
		s, _ := indian.Format(x)
		fmt.Println(s)
	}
	// Output:
	// 1,23,456.7891
	// 1,23,45,67,890.123
	// -1,23,456.78
	// 123
}

// ExampleFormatString keeps the fraction exactly as written.
func ExampleFormatString() {
	s, _ := indian.FormatString("2500000.50", indian.WithSymbol("₹"))
	fmt.Println(s)
	// Output:
	// ₹25,00,000.50
}
