package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgicon"
	"github.com/benoitkugler/svgmark/svgmarker"
	"github.com/benoitkugler/svgmark/svgpath"
	"github.com/benoitkugler/svgmark/svgpdf"
	"github.com/benoitkugler/svgmark/svgraster"
	"github.com/tdewolff/argp"
)

type Render struct {
	Output string `short:"o" desc:"Output file, .png or .pdf"`
	Width  int    `short:"w" default:"0" desc:"Width of the PNG image, in pixels"`
	Height int    `default:"0" desc:"Height of the PNG image, in pixels"`
	Strict bool   `desc:"Fail on any unsupported or invalid content"`
	Warn   bool   `desc:"Log unsupported or invalid content"`
	Input  string `index:"0" desc:"Input SVG file"`
}

type Vertices struct {
	Markers bool   `short:"m" desc:"Print the marker placements instead of the vertices"`
	Data    string `index:"0" desc:"Path data"`
}

func main() {
	root := argp.NewCmd(&Render{}, "SVG renderer with marker support")
	root.AddCmd(&Vertices{}, "vertices", "Print the vertex stream of path data")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	mode := svgicon.IgnoreErrorMode
	if cmd.Strict {
		mode = svgicon.StrictErrorMode
	} else if cmd.Warn {
		mode = svgicon.WarnErrorMode
	}
	icon, err := svgicon.ReadIcon(cmd.Input, mode)
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".png":
		img, err := svgraster.RasterIcon(icon, &svgraster.Options{Width: cmd.Width, Height: cmd.Height})
		if err != nil {
			return err
		}
		if err = png.Encode(f, img); err != nil {
			return err
		}
	case ".pdf":
		if err = svgpdf.RenderIcon(icon, f); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	return f.Close()
}

func (cmd *Vertices) Run() error {
	if cmd.Data == "" {
		return argp.ShowUsage
	}

	vertices := svgpath.Draw(svgdraw.NewContext(), cmd.Data)
	if !cmd.Markers {
		fmt.Println(vertices)
		return nil
	}
	for _, pl := range svgmarker.Placements(vertices) {
		fmt.Printf("%-5s %g,%g %.4f\n", pl.Position, pl.Point.X, pl.Point.Y, pl.Angle)
	}
	return nil
}
