package main

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/tdewolff/argp"

	"github.com/raykov/svg2path"
)

type Code struct {
	Precision int    `short:"p" default:"4" desc:"Fraction digits"`
	Verbose   bool   `short:"v" desc:"Log dropped elements"`
	Input     string `index:"0" desc:"Input SVG file, standard input when empty"`
}

type SVG struct {
	Precision int    `short:"p" default:"4" desc:"Fraction digits"`
	Verbose   bool   `short:"v" desc:"Log dropped elements"`
	Input     string `index:"0" desc:"Input SVG file, standard input when empty"`
}

type PNG struct {
	Width      int     `desc:"Image width, view box width when zero"`
	Height     int     `desc:"Image height, view box height when zero"`
	Fill       string  `default:"black" desc:"Fill color or none"`
	Gradient   string  `short:"g" desc:"Fill gradient stops such as 'red; blue 100%'"`
	Spread     string  `default:"pad" desc:"Gradient spread: pad, reflect or repeat"`
	Stroke     string  `default:"none" desc:"Stroke color or none"`
	LineWidth  float64 `default:"2" desc:"Stroke width in pixels"`
	Background string  `default:"white" desc:"Background color or none"`
	Caption    string  `short:"c" desc:"Caption text"`
	Font       string  `default:"12px sans-serif" desc:"Caption CSS font shorthand"`
	Verbose    bool    `short:"v" desc:"Log dropped elements"`
	Output     string  `short:"o" desc:"Output PNG file"`
	Input      string  `index:"0" desc:"Input SVG file, standard input when empty"`
}

type Diff struct {
	Width  int    `desc:"Image width, view box width when zero"`
	Height int    `desc:"Image height, view box height when zero"`
	Input  string `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Code{}, "Convert SVG shapes into path drawing code")
	root.AddCmd(&SVG{}, "svg", "Rewrite all shapes as path elements")
	root.AddCmd(&PNG{}, "png", "Render the converted paths")
	root.AddCmd(&Diff{}, "diff", "Compare the converted paths with an oksvg rendering")
	root.Parse()
	root.PrintHelp()
}

func newConverter(verbose bool) *svg2path.Converter {
	c := &svg2path.Converter{Logger: logr.Discard()}
	if verbose {
		stdr.SetVerbosity(1)
		c.Logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
		c.ErrorMode = svg2path.WarnErrorMode
	}
	return c
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func convert(filename string, verbose bool) (*svg2path.Document, error) {
	f := os.Stdin
	if filename != "" && filename != "-" {
		var err error
		if f, err = os.Open(filename); err != nil {
			return nil, err
		}
		defer f.Close()
	}
	return newConverter(verbose).ConvertReader(f)
}

func (cmd *Code) Run() error {
	doc, err := convert(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Println(doc.Code(cmd.Precision))
	return nil
}

func (cmd *SVG) Run() error {
	doc, err := convert(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Print(doc.SVG(cmd.Precision))
	return nil
}

func (cmd *PNG) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	doc, err := convert(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}

	style := svg2path.DefaultStyle
	if style.FillerColor, err = svg2path.ParseSVGColor(cmd.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if style.LinerColor, err = svg2path.ParseSVGColor(cmd.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if cmd.Gradient != "" {
		if style.FillGradient, err = svg2path.ParseGradient(cmd.Gradient); err != nil {
			return fmt.Errorf("gradient: %w", err)
		}
		switch cmd.Spread {
		case "pad":
		case "reflect":
			style.FillGradient.Spread = svg2path.ReflectSpread
		case "repeat":
			style.FillGradient.Spread = svg2path.RepeatSpread
		default:
			return fmt.Errorf("unknown spread %q", cmd.Spread)
		}
	}
	style.LineWidth = cmd.LineWidth
	var background color.Color
	if background, err = svg2path.ParseSVGColor(cmd.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	img, err := svg2path.Rasterize(doc, svg2path.RenderOptions{
		Width:        cmd.Width,
		Height:       cmd.Height,
		Style:        style,
		Background:   background,
		Caption:      cmd.Caption,
		CaptionStyle: svg2path.CaptionStyle{Font: cmd.Font, X: 4},
	})
	if err != nil {
		return err
	}

	fw, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(fw, img); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

func (cmd *Diff) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	text, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	doc, err := svg2path.Convert(string(text))
	if err != nil {
		return err
	}
	w, h := cmd.Width, cmd.Height
	if w <= 0 {
		w = int(doc.ViewBox.W + 0.5)
	}
	if h <= 0 {
		h = int(doc.ViewBox.H + 0.5)
	}
	diff, err := svg2path.Compare(string(text), doc, w, h)
	if err != nil {
		return err
	}
	fmt.Printf("%.4f%% of %dx%d pixels differ\n", diff*100, w, h)
	return nil
}
