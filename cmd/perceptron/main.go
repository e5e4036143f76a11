package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gorgonia/perceptron"
	"github.com/gorgonia/perceptron/dataset"
	gifenc "github.com/gorgonia/perceptron/encoding/gif"
	"github.com/pkg/errors"
)

var (
	size        = flag.Int("size", 100, "side of the receptor field and of the association layer")
	connections = flag.Int("connections", 100, "association cells each receptor excites")
	limit       = flag.Int("limit", 3, "a cell is active if its excitation is strictly greater than this")
	correction  = flag.Float64("correction", 0.05, "weight correction on a wrong bit")
	locking     = flag.String("locking", "region", "weight locking policy: region or cell")
	reportEvery = flag.Int("report", 1000, "report progress every this many steps. 0 to disable")
	seed        = flag.Int64("seed", 1337, "seed for the projection and the dataset")

	steps   = flag.Int("steps", 50000, "training steps")
	workers = flag.Int("workers", 12, "training workers")
	evalN   = flag.Int("eval", 1000, "samples to evaluate after training")
	show    = flag.Int("show", 20, "evaluated samples to print at the end")

	set      = flag.String("set", "alphabet", "dataset: alphabet or shapes")
	labels   = flag.String("labels", "ЭНЕРГИЯ!", "alphabet of the glyph dataset")
	minScale = flag.Float64("minscale", 0.5, "smallest glyph, relative to the canvas")
	maxScale = flag.Float64("maxscale", 0.5, "largest glyph, relative to the canvas")

	gifFile   = flag.String("gif", "", "write the evaluated samples and the weights as an animated gif")
	gifScale  = flag.Int("gifscale", 2, "pixels per receptor in the gif")
	statsFile = flag.String("stats", "", "write the training progress as CSV")
	dotFile   = flag.String("dot", "", "write the projection as a graphviz file")
	verbose   = flag.Bool("v", false, "print the engine log at the end")
)

func makeDataset() (*dataset.Set, error) {
	switch *set {
	case "alphabet":
		return dataset.Alphabet(strings.Split(*labels, ""), *seed, dataset.WithScale(*minScale, *maxScale))
	case "shapes":
		return dataset.Shapes(*seed)
	}
	return nil, errors.Errorf("Unknown dataset %q", *set)
}

func makeConfig(bits int) perceptron.Config {
	conf := perceptron.DefaultConfig(bits)
	conf.Size = *size
	conf.Connections = *connections
	conf.ActivationLimit = *limit
	conf.WeightCorrection = *correction
	conf.ReportEvery = *reportEvery
	conf.Seed = *seed
	switch *locking {
	case "region":
		conf.Locking = perceptron.RegionLock
	case "cell":
		conf.Locking = perceptron.CellLock
	default:
		log.Fatalf("Unknown locking policy %q", *locking)
	}
	return conf
}

func main() {
	flag.Parse()

	ds, err := makeDataset()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d labels: %q. %d bit codes", ds.Len(), ds.Labels(), ds.CodeLen())

	stats := perceptron.NewStatistics()
	conf := makeConfig(ds.CodeLen())
	conf.Reporter = perceptron.ReporterFunc(func(p perceptron.Progress) {
		log.Printf("Step %d: %.2f%% successes", p.Steps, 100*p.Ratio)
		stats.Report(p)
	})

	e, err := perceptron.New(conf, ds)
	if err != nil {
		log.Fatal(err)
	}
	if *dotFile != "" {
		if err := ioutil.WriteFile(*dotFile, []byte(e.Projection().ToDot()), 0644); err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	if err := e.Train(*steps, *workers); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	out := newConsole(os.Stdout, ds, *show)
	encoders := multiEncoder{out}
	var g *gifenc.Encoder
	if *gifFile != "" {
		f, err := os.Create(*gifFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		g = gifenc.NewGifEncoder(*gifScale)
		g.Writer = f
		encoders = append(encoders, g)
	}

	eval, err := e.Evaluate(*evalN, encoders)
	if err != nil {
		log.Fatal(err)
	}
	if g != nil {
		for bit := 0; bit < conf.Bits; bit++ {
			if err := g.EncodeWeights(e.Weights().Plane(bit), conf.Size); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err := encoders.Flush(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Success: %.2f%% (%d of %d)\n", 100*eval.Ratio(), eval.Successes, eval.Samples)
	fmt.Printf("Training: %.2f%% over %d steps\n", 100*e.Ratio(), e.Steps())
	fmt.Printf("Time: %v\n", elapsed)
	fmt.Printf("Workers: %d\n", *workers)

	if *statsFile != "" {
		if err := stats.Dump(*statsFile); err != nil {
			log.Fatal(err)
		}
	}
	if *verbose {
		e.Log(os.Stderr)
	}
}
