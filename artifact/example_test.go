package artifact_test

import (
	"fmt"

	"github.com/cwbudde/algo-artifact/artifact"
	"github.com/cwbudde/algo-artifact/internal/testutil"
)

func ExampleClassify() {
	// Four seconds of a 4 Hz sine at 100 Hz, with a tenfold amplitude burst
	// during the third second.
	channel := testutil.WithBurst(testutil.DeterministicSine(4, 100, 1.0, 400), 200, 300, 10)
	signal := testutil.MultiChannel(channel)

	grid, err := artifact.Classify(signal, 100, artifact.WithMethod(artifact.MethodCov))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for second, flagged := range grid[0] {
		if flagged {
			fmt.Println("artifact in second", second)
		}
	}
	// Output:
	// artifact in second 2
}
