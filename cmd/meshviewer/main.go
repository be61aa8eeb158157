// Mesh index comparison viewer.
//
// Draws vertex count against isolevel for the eighth-of-a-sphere test mesh,
// once with mesh indices and once without, and shows it in a window until
// the window is closed. With -out the chart is written to a PNG instead and
// no window is created.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/MeshIndexChart/cmd/meshviewer/uihelpers"
	"github.com/iafilius/MeshIndexChart/src/chart"
	"github.com/iafilius/MeshIndexChart/src/dataset"
	"github.com/iafilius/MeshIndexChart/src/logging"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	plot    *chart.GoChart
	savings []dataset.Saving

	// widgets
	imgCanvas *canvas.Image
	table     *widget.Table

	// prefs
	showHints bool
	darkTheme bool
}

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}
func (t *variantTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (t *variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (t *variantTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func themeFor(dark bool) fyne.Theme {
	if dark {
		return &variantTheme{variant: theme.VariantDark}
	}
	return &variantTheme{variant: theme.VariantLight}
}

// windowDisplay shows the chart in the viewer window and blocks until it closes.
type windowDisplay struct {
	state *uiState
}

func (d windowDisplay) Display(img image.Image) error {
	st := d.state
	if st == nil || st.window == nil {
		return fmt.Errorf("viewer window not initialised")
	}
	setChartImage(st, img)
	watchResize(st)
	st.window.ShowAndRun()
	return nil
}

func main() {
	outFlag := flag.String("out", "", "Write the chart to this PNG file and exit instead of opening a window")
	widthFlag := flag.Int("width", 0, "Chart width in pixels for -out (0 = default)")
	heightFlag := flag.Int("height", 0, "Chart height in pixels for -out (0 = derived from width)")
	hintsFlag := flag.Bool("hints", false, "Draw a caption with the saving at the highest isolevel (-out only; the window remembers its own toggle)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	if !logging.SetLogLevel(*logLevel) {
		logging.Warnf("unknown log level %q, keeping info", *logLevel)
	}

	indexed, plain := dataset.WithIndices(), dataset.WithoutIndices()
	if *outFlag != "" {
		if err := RunScreenshotsMode(*outFlag, *widthFlag, *heightFlag, *hintsFlag, indexed, plain); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runViewer(indexed, plain); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runViewer(indexed, plain dataset.Dataset) error {
	defer logging.TimeTrack(time.Now(), "viewer session")
	savings, err := dataset.Compare(indexed, plain)
	if err != nil {
		return err
	}

	a := app.NewWithID("com.iafilius.meshchart")
	w := a.NewWindow("Mesh Index Comparison")
	w.Resize(fyne.NewSize(1100, 640))

	state := &uiState{
		app:       a,
		window:    w,
		savings:   savings,
		darkTheme: true,
	}
	loadPrefs(state)
	a.Settings().SetTheme(themeFor(state.darkTheme))

	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)
	darkChk := widget.NewCheck("Dark", nil)
	darkChk.SetChecked(state.darkTheme)

	state.imgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.imgCanvas.SetMinSize(fyne.NewSize(900, 320))
	state.table = newSavingsTable(state)

	top := container.NewHBox(
		widget.NewButton("Export PNG…", func() { exportChartPNG(state, "mesh_indices_comparison.png") }),
		hintsChk, darkChk,
	)
	tabs := container.NewAppTabs(
		container.NewTabItem("Chart", container.NewVScroll(state.imgCanvas)),
		container.NewTabItem("Data", state.table),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	if idx := a.Preferences().IntWithFallback("selectedTabIndex", 0); idx >= 0 && idx < len(tabs.Items) {
		tabs.SelectIndex(idx)
	}
	tabs.OnSelected = func(*container.TabItem) {
		a.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	w.SetContent(container.NewBorder(top, nil, nil, nil, tabs))

	// callbacks are wired once the canvas exists
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		redrawChart(state)
	}
	darkChk.OnChanged = func(b bool) {
		state.darkTheme = b
		savePrefs(state)
		a.Settings().SetTheme(themeFor(b))
	}
	buildMenus(state)

	cw, ch := chartSize(state)
	state.plot = chart.NewGoChart(cw, ch, windowDisplay{state: state})
	applyHint(state)
	return chart.Draw(state.plot, indexed, plain)
}

// watchResize redraws the chart whenever the canvas width changes.
func watchResize(state *uiState) {
	w := state.window
	if w.Canvas() == nil {
		return
	}
	prevW := int(w.Canvas().Size().Width)
	done := make(chan struct{})
	w.SetOnClosed(func() {
		savePrefs(state)
		close(done)
	})
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c := w.Canvas()
				if c == nil {
					continue
				}
				curW := int(c.Size().Width)
				if curW != prevW {
					prevW = curW
					fyne.Do(func() { redrawChart(state) })
				}
			}
		}
	}()
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	export := func() { exportChartPNG(state, "mesh_indices_comparison.png") }
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Chart…", export),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: mod}, func(fyne.Shortcut) { export() })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

func applyHint(state *uiState) {
	if state.plot == nil {
		return
	}
	if state.showHints {
		state.plot.Hint = chart.HintText(state.savings)
	} else {
		state.plot.Hint = ""
	}
}

func redrawChart(state *uiState) {
	if state == nil || state.plot == nil {
		return
	}
	applyHint(state)
	cw, ch := chartSize(state)
	img, err := state.plot.Image(cw, ch)
	if err != nil {
		// keep the UI visibly updating even when go-chart rejects the input
		logging.Errorf("chart redraw failed: %v; showing blank fallback", err)
		img = chart.Blank(cw, ch)
	}
	setChartImage(state, img)
}

func setChartImage(state *uiState, img image.Image) {
	if state.imgCanvas == nil || img == nil {
		return
	}
	b := img.Bounds()
	state.imgCanvas.Image = img
	state.imgCanvas.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	state.imgCanvas.Refresh()
}

// screenshotWidthOverride fixes the headless chart width; tests set it for exact sizes.
var screenshotWidthOverride int

// chartSize computes a chart size from the current window width so the isolevel axis uses the space available.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		if screenshotWidthOverride > 0 {
			return uihelpers.ComputeChartDimensions(screenshotWidthOverride)
		}
		return 1100, 380
	}
	return uihelpers.ComputeChartDimensions(uihelpers.ChartWidthForCanvas(state.window.Canvas().Size().Width))
}

func newSavingsTable(state *uiState) *widget.Table {
	t := widget.NewTable(
		// 1 header row + one row per isolevel; 5 columns
		func() (int, int) { return len(state.savings) + 1, 5 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				lbl.SetText(savingsHeader[id.Col])
				return
			}
			rix := id.Row - 1
			if rix < 0 || rix >= len(state.savings) {
				lbl.SetText("")
				return
			}
			lbl.SetText(savingsCell(state.savings[rix], id.Col))
		},
	)
	for i, w := range []float32{90, 140, 120, 110, 110} {
		t.SetColumnWidth(i, w)
	}
	return t
}

var savingsHeader = [5]string{"Isolevel", "Without indices", "With indices", "Saved", "Reduction"}

func savingsCell(s dataset.Saving, col int) string {
	switch col {
	case 0:
		return fmt.Sprintf("%g", s.Isolevel)
	case 1:
		return fmt.Sprintf("%d", s.Plain)
	case 2:
		return fmt.Sprintf("%d", s.Indexed)
	case 3:
		return fmt.Sprintf("%d", s.Saved)
	case 4:
		return fmt.Sprintf("%.1f%%", s.ReductionPct)
	}
	return ""
}

func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil {
		return
	}
	if state.imgCanvas == nil || state.imgCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.imgCanvas.Image); err != nil {
			logging.Errorf("export %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, state.window)
			return
		}
		logging.Infof("chart exported to %s", wc.URI().Path())
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetBool("showHints", state.showHints)
	prefs.SetBool("darkTheme", state.darkTheme)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	state.darkTheme = prefs.BoolWithFallback("darkTheme", state.darkTheme)
}
