package perceptron

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
	"sync"
)

// Statistics records the progress of training runs. It implements Reporter.
type Statistics struct {
	sync.Mutex
	Progress []Progress
}

// NewStatistics creates an empty *Statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		Progress: make([]Progress, 0, 64),
	}
}

// Report records p.
func (s *Statistics) Report(p Progress) {
	s.Lock()
	s.Progress = append(s.Progress, p)
	s.Unlock()
}

// Records returns the recorded progress, ordered by steps.
func (s *Statistics) Records() []Progress {
	s.Lock()
	defer s.Unlock()
	retVal := make([]Progress, len(s.Progress))
	copy(retVal, s.Progress)
	// reports from different workers may arrive out of order
	sort.SliceStable(retVal, func(i, j int) bool { return retVal[i].Steps < retVal[j].Steps })
	return retVal
}

// Dump writes the records as a CSV file of steps, successes and ratio.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"steps", "successes", "ratio"}); err != nil {
		return err
	}
	var records [][]string
	for _, p := range s.Records() {
		record := []string{
			strconv.FormatInt(p.Steps, 10),
			strconv.FormatInt(p.Successes, 10),
			strconv.FormatFloat(p.Ratio, 'f', 4, 64),
		}
		records = append(records, record)
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
