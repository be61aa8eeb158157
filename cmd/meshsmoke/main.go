// meshsmoke opens the comparison chart in a window and closes it again after a
// short delay. Use it to check that a display surface is available before
// relying on meshviewer.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/iafilius/MeshIndexChart/src/chart"
	"github.com/iafilius/MeshIndexChart/src/dataset"
)

func main() {
	closeAfter := flag.Duration("close-after", 5*time.Second, "Close the window after this long")
	flag.Parse()

	fmt.Println("[meshsmoke] starting minimal Fyne app")
	a := app.New()
	w := a.NewWindow("Mesh Chart Smoke Test")

	display := chart.DisplayFunc(func(img image.Image) error {
		c := canvas.NewImageFromImage(img)
		c.FillMode = canvas.ImageFillOriginal
		w.SetContent(c)
		go func() {
			time.Sleep(*closeAfter)
			fmt.Println("[meshsmoke] closing window via fyne.Do")
			fyne.Do(func() { w.Close() })
		}()
		w.ShowAndRun()
		return nil
	})
	if err := chart.Draw(chart.NewGoChart(800, 300, display), dataset.WithIndices(), dataset.WithoutIndices()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[meshsmoke] exited cleanly")
}
