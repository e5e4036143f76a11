package dataset

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/perceptron"
	"github.com/stretchr/testify/assert"
)

type blank struct{}

func (blank) Render(label string, size int, rnd *rand.Rand) image.Image {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

var codeTests = []struct {
	labels []string
	width  int
	codes  map[string]perceptron.Code
}{
	{[]string{"a"}, 1, map[string]perceptron.Code{"a": "0"}},
	{[]string{"a", "b"}, 1, map[string]perceptron.Code{"a": "0", "b": "1"}},
	{[]string{"a", "b", "c"}, 2, map[string]perceptron.Code{"a": "00", "b": "01", "c": "10"}},
	{[]string{"a", "b", "a", "c", "b"}, 2, map[string]perceptron.Code{"a": "00", "b": "01", "c": "10"}},
	{[]string{"0", "1", "2", "3", "4"}, 3, map[string]perceptron.Code{"0": "000", "1": "001", "2": "010", "3": "011", "4": "100"}},
}

func TestNewSet(t *testing.T) {
	assert := assert.New(t)
	for i, c := range codeTests {
		s, err := NewSet(c.labels, blank{}, 1)
		if err != nil {
			t.Errorf("Test %d: %v", i, err)
			continue
		}
		assert.Equal(len(c.codes), s.Len(), "Test %d", i)
		assert.Equal(c.width, s.CodeLen(), "Test %d", i)
		for l, want := range c.codes {
			got, ok := s.Code(l)
			assert.True(ok, "Test %d: %q", i, l)
			assert.Equal(want, got, "Test %d: %q", i, l)
			assert.True(got.Valid(s.CodeLen()))

			back, ok := s.LabelOf(got)
			assert.True(ok)
			assert.Equal(l, back)
		}
	}

	_, err := NewSet(nil, blank{}, 1)
	assert.NotNil(err)
	_, err = NewSet([]string{"a"}, nil, 1)
	assert.NotNil(err)
}

func TestSetLabels(t *testing.T) {
	s, err := NewSet(strings.Split("абвабг", ""), blank{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"а", "б", "в", "г"}
	if diff := cmp.Diff(want, s.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "а", s.Label(0))
	assert.Equal(t, "б", s.Label(5))
	assert.Equal(t, "г", s.Label(-1))

	// each label is seen equally often over a whole number of cycles
	counts := make(map[string]int)
	for i := 1; i <= 4*25; i++ {
		counts[s.Label(i)]++
	}
	for _, l := range want {
		assert.Equal(t, 25, counts[l], "%q", l)
	}

	_, ok := s.Code("д")
	assert.False(t, ok)
	_, ok = s.LabelOf("11")
	assert.True(t, ok)
	_, ok = s.LabelOf("111")
	assert.False(t, ok)
}

func inkOf(img image.Image) (count int, others int) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			switch c.Y {
			case 0:
				count++
			case 0xff:
			default:
				others++
			}
		}
	}
	return
}

func TestAlphabet(t *testing.T) {
	assert := assert.New(t)
	s, err := Alphabet(strings.Split("АБВГ", ""), 1337)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(4, s.Len())
	assert.Equal(2, s.CodeLen())

	for i := 0; i < s.Len(); i++ {
		img := s.Render(s.Label(i), 40)
		assert.Equal(image.Rect(0, 0, 40, 40), img.Bounds())
		ink, others := inkOf(img)
		assert.NotZero(ink, "%q has no ink", s.Label(i))
		assert.Less(ink, 40*40/2, "%q is mostly ink", s.Label(i))
		assert.Zero(others, "%q should be black on white", s.Label(i))
	}

	_, err = Alphabet([]string{"a"}, 1, WithScale(0.5, 0.2))
	assert.NotNil(err)
	_, err = Alphabet([]string{"a"}, 1, WithScale(0.2, 0.6))
	assert.Nil(err)
}

func TestAlphabetConcurrentRender(t *testing.T) {
	s, err := Alphabet(strings.Split("ABCDEFGH", ""), 1, WithScale(0.3, 0.6))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				img := s.Render(s.Label(w+i), 64)
				if ink, _ := inkOf(img); ink == 0 {
					t.Errorf("worker %d sample %d: no ink", w, i)
				}
			}
		}(w)
	}
	wg.Wait()
}

func TestShapes(t *testing.T) {
	assert := assert.New(t)
	s, err := Shapes(1)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal([]string{Circle, Rhombus}, s.Labels())

	for i := 0; i < 10; i++ {
		for _, l := range s.Labels() {
			img := s.Render(l, 100)
			ink, others := inkOf(img)
			assert.NotZero(ink, "%v %d", l, i)
			assert.Zero(others)

			// outlines, not filled shapes: the centre of mass is not ink
			cx, cy := centre(img)
			c := color.GrayModel.Convert(img.At(cx, cy)).(color.Gray)
			assert.Equal(uint8(0xff), c.Y, "%v %d: centre (%d, %d) is ink\n%v", l, i, cx, cy, ASCII(img))
		}
	}

	ink, _ := inkOf(s.Render("hexagon", 50))
	assert.Zero(ink)
}

func centre(img image.Image) (int, int) {
	var sx, sy, n int
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y == 0 {
				sx += x
				sy += y
				n++
			}
		}
	}
	return sx / n, sy / n
}

func TestASCII(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetGray(0, 0, color.Gray{0})
	img.SetGray(2, 1, color.Gray{0})
	assert.Equal(t, "█  \n  █\n", ASCII(img))
}
