package intervals_test

import (
	"fmt"

	"github.com/katalvlaran/coursework/intervals"
)

// ExampleMerge merges two short annotation lists. Only [10,15] and [12,18]
// overlap by more than half, so they collapse into one record.
func ExampleMerge() {
	a := []intervals.Interval{
		{Left: 1, Right: 5, Values: []string{"A", "B"}},
		{Left: 10, Right: 15, Values: []string{"C"}},
	}
	b := []intervals.Interval{
		{Left: 3, Right: 8, Values: []string{"D", "E"}},
		{Left: 12, Right: 18, Values: []string{"F"}},
	}

	merged, err := intervals.Merge(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, m := range merged {
		fmt.Println(m)
	}
	// Output:
	// [1, 5] [A B]
	// [3, 8] [D E]
	// [10, 15] [C F]
}

// ExampleMerge_containment shows a fully contained record being absorbed.
func ExampleMerge_containment() {
	merged, _ := intervals.Merge(
		[]intervals.Interval{{Left: 1, Right: 10, Values: []string{"Container"}}},
		[]intervals.Interval{{Left: 3, Right: 7, Values: []string{"Contained"}}},
	)
	fmt.Println(merged[0])
	// Output:
	// [1, 10] [Container Contained]
}

// ExampleOverlapRatio prints the ratio that decides a merge.
func ExampleOverlapRatio() {
	x := intervals.Interval{Left: 10, Right: 15}
	y := intervals.Interval{Left: 12, Right: 18}
	fmt.Printf("%.2f\n", intervals.OverlapRatio(x, y))
	// Output:
	// 0.60
}
