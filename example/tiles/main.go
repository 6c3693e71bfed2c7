// SPDX-License-Identifier: Unlicense OR MIT

package main

// A command rendering a demo element tree at one or more view sizes,
// either to PNG files or as text to the terminal.

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/sync/errgroup"

	"tilekit.org/f32"
	"tilekit.org/layout"
	"tilekit.org/op/paint"
	"tilekit.org/theme"
	"tilekit.org/unit"
	"tilekit.org/view"
	"tilekit.org/widget"
)

var (
	sizes     = flag.String("sizes", "320x240,640x480", "comma separated view sizes")
	prefix    = flag.String("o", "tiles", "output file name prefix")
	ascii     = flag.Bool("ascii", false, "print the views as text instead of writing PNG files")
	themeFile = flag.String("theme", "", "TOML theme file")
	scale     = flag.Float64("scale", 1, "pixels per dp and sp")
)

// cell is the size of a terminal character in pixels.
var cell = f32.Pt(8, 16)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	szs, err := parseSizes(*sizes)
	if err != nil {
		return err
	}
	th := theme.New()
	if *themeFile != "" {
		f, err := os.Open(*themeFile)
		if err != nil {
			return err
		}
		th, err = theme.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *themeFile, err)
		}
	}
	m := unit.Metric{PxPerDp: float32(*scale), PxPerSp: float32(*scale)}

	// Every view gets its own tree: a tree must not be laid out
	// from two goroutines at once.
	texts := make([]string, len(szs))
	var g errgroup.Group
	for i, sz := range szs {
		i, sz := i, sz
		g.Go(func() error {
			root, err := demo(th)
			if err != nil {
				return err
			}
			v := view.New(view.WithTheme(th), view.WithMetric(m))
			v.SetContent(root)
			v.Resize(f32.Pt(float32(sz.X), float32(sz.Y)))
			if *ascii {
				c := paint.NewCells(int(float32(sz.X)/cell.X), int(float32(sz.Y)/cell.Y), cell)
				v.Draw(c)
				texts[i] = c.String()
				return nil
			}
			img := image.NewRGBA(image.Rectangle{Max: sz})
			v.Draw(paint.NewRaster(img))
			return writePNG(fmt.Sprintf("%s-%dx%d.png", *prefix, sz.X, sz.Y), img)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, t := range texts {
		if t == "" {
			continue
		}
		fmt.Printf("%dx%d:\n%s\n", szs[i].X, szs[i].Y, t)
	}
	return nil
}

// demo returns a window-like tree: a header, a side bar with a radio
// group and a framed content area.
func demo(th *theme.Theme) (layout.Element, error) {
	home, err := widget.NewIcon(icons.ActionHome)
	if err != nil {
		return nil, err
	}
	eye, err := widget.NewIcon(icons.ActionVisibility)
	if err != nil {
		return nil, err
	}
	show := widget.NewToggleButton(eye)
	show.Select(true)
	small, medium, large := widget.NewRadioButton("Small"), widget.NewRadioButton("Medium"), widget.NewRadioButton("Large")
	medium.Select(true)
	return widget.Format(
		`vtile(
			vsize(48dp, layer(htile(margin(8dp, _), margin(8dp 12dp, _), _, margin(8dp, _)), _)),
			htile(
				hsize(120dp, layer(margin(8dp, vtile(_, vspace(4dp), _, vspace(4dp), _, _)), _)),
				layer(_, margin(8dp, _))
			)
		)`,
		widget.NewIconButton(home), widget.NewHeading("tilekit"), new(widget.Spacer), show, new(widget.TitleBar),
		small, medium, large, new(widget.Spacer), new(widget.Panel),
		new(widget.Frame), &widget.Box{Color: th.Indicator},
	)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseSizes(s string) ([]image.Point, error) {
	var szs []image.Point
	for _, f := range strings.Split(s, ",") {
		var sz image.Point
		if _, err := fmt.Sscanf(strings.TrimSpace(f), "%dx%d", &sz.X, &sz.Y); err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", f, err)
		}
		if sz.X <= 0 || sz.Y <= 0 {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		szs = append(szs, sz)
	}
	return szs, nil
}
