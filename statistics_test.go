package perceptron

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStatistics(t *testing.T) {
	s := NewStatistics()
	s.Report(Progress{Steps: 200, Successes: 150, Ratio: 0.75, Worker: 1})
	s.Report(Progress{Steps: 100, Successes: 50, Ratio: 0.5, Worker: 0})

	want := []Progress{
		{Steps: 100, Successes: 50, Ratio: 0.5, Worker: 0},
		{Steps: 200, Successes: 150, Ratio: 0.75, Worker: 1},
	}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}

	filename := filepath.Join(t.TempDir(), "stats.csv")
	if err := s.Dump(filename); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, [][]string{
		{"steps", "successes", "ratio"},
		{"100", "50", "0.5000"},
		{"200", "150", "0.7500"},
	}, records)

	assert.NotNil(t, s.Dump(filepath.Join(t.TempDir(), "missing", "stats.csv")))
}
