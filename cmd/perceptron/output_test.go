package main

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/gorgonia/perceptron"
	"github.com/gorgonia/perceptron/dataset"
	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	assert := assert.New(t)
	ds, err := dataset.Shapes(1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	c := newConsole(&buf, ds, 2)
	for i := 0; i < 5; i++ {
		label := ds.Label(i)
		code, _ := ds.Code(label)
		s := perceptron.Sample{
			Index:    i,
			Label:    label,
			Image:    image.NewGray(image.Rect(0, 0, 2, 1)),
			Expected: code,
			Result:   perceptron.Result{Code: "0"},
		}
		assert.Nil(c.Encode(s))
	}
	assert.Equal(2, len(c.last))
	assert.Nil(c.Flush())

	out := buf.String()
	assert.False(strings.Contains(out, "#2 "))
	assert.Contains(out, "██\n#3 expected \"rhombus\" (1) got \"circle\" (0) ✗")
	assert.Contains(out, "██\n#4 expected \"circle\" (0) got \"circle\" (0) ✓")
	assert.Equal(0, len(c.last))
}

func TestMultiEncoder(t *testing.T) {
	ds, err := dataset.Shapes(1)
	if err != nil {
		t.Fatal(err)
	}
	var a, b bytes.Buffer
	m := multiEncoder{newConsole(&a, ds, 1), newConsole(&b, ds, 1)}
	s := perceptron.Sample{Image: image.NewGray(image.Rect(0, 0, 1, 1)), Expected: "0", Label: dataset.Circle}
	assert.Nil(t, m.Encode(s))
	assert.Nil(t, m.Flush())
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
