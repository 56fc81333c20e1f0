// +build ignore

package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"github.com/vdobler/boxplot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	rand.Seed(27)

	samples := make([][]float64, 5)
	for i := range samples {
		n := 40 + rand.Intn(40)
		sample := make([]float64, n)
		for j := range sample {
			sample[j] = 10*float64(i) + 8*rand.NormFloat64()
		}
		// Plant a few far away points so some outliers show up.
		sample[0] = 10*float64(i) + 40
		sample[1] = 10*float64(i) - 35
		samples[i] = sample
	}

	item, err := boxplot.New(
		boxplot.Data(samples),
		boxplot.Width(0.6),
		boxplot.Outline(boxplot.NewPen(color.RGBA{A: 0xff}, 1)),
		boxplot.Brush(color.RGBA{R: 0xa0, G: 0xc8, B: 0xff, A: 0xff}),
		boxplot.MedianPen(boxplot.NewPen(color.RGBA{R: 0xff, A: 0xff}, 2)),
		boxplot.Symbol("diamond"),
		boxplot.SymbolBrush(color.RGBA{R: 0xff, G: 0x80, A: 0xff}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	img := vgimg.New(600, 400)
	view := &boxplot.View{Canvas: draw.New(img)}
	item.SetScene(view)

	view.X = item.DataBounds(0)
	view.Y = item.DataBounds(1)
	view.X.Pad(0.3)
	view.Y.Pad(5)

	if err := view.Draw(item); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create("boxplot.png")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
