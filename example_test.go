package perceptron_test

import (
	"fmt"

	"github.com/gorgonia/perceptron"
	"github.com/gorgonia/perceptron/dataset"
)

func Example() {
	ds, err := dataset.Shapes(1337)
	if err != nil {
		fmt.Println(err)
		return
	}
	conf := perceptron.DefaultConfig(ds.CodeLen())
	conf.Size = 32
	conf.Connections = 16

	e, err := perceptron.New(conf, ds)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := e.Train(200, 4); err != nil {
		fmt.Println(err)
		return
	}
	eval, err := e.Evaluate(10, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d bit codes. Trained %d steps. Evaluated %d samples\n", ds.CodeLen(), e.Steps(), eval.Samples)

	// Output:
	// 1 bit codes. Trained 200 steps. Evaluated 10 samples
}
