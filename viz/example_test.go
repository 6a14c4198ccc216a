package viz_test

import (
	"fmt"

	"github.com/katalvlaran/orbitviz/orbit"
	"github.com/katalvlaran/orbitviz/viz"
)

// ExampleGenerate builds a small classic dataset with raw-magnitude
// coordinates (N, TotalSteps, FirstDrop).
func ExampleGenerate() {
	ds, err := viz.Generate(3, []orbit.Rule{orbit.Classic()}, []string{"blue"}, viz.StepsPoint)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, p := range ds.Points {
		fmt.Printf("%s: (%.0f, %.0f, %.0f)\n", ds.Labels[i], p.X, p.Y, p.Z)
	}
	// Output:
	// 1: (1, 0, 0)
	// 2: (2, 1, 1)
	// 3: (3, 7, 6)
}

// ExampleEvaluate compares two rules and hands the merged dataset to a
// renderer — here a stand-in that only reports what it received.
func ExampleEvaluate() {
	rules := []orbit.Rule{orbit.Classic(), orbit.PlusThree()}
	report := viz.RenderFunc(func(ds *viz.Dataset, layout viz.Layout) error {
		fmt.Printf("%d points on a %dx%d surface\n", ds.Len(), layout.Width, layout.Height)
		return nil
	})

	if _, err := viz.Evaluate(50, rules, nil, viz.ModularPoint, viz.DefaultLayout(), report); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 98 points on a 800x600 surface
}
