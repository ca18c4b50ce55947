// This defines a basic executable for generating an image of a maze, possibly
// shaped by a template image, and optionally showing its solution.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/yalue/image_utils"
	maze "github.com/yalue/shaped_maze"
)

const arrowLength = 16

// Returns 0 = left, 1 = up, 2 = right, and 3 = down. The given angle must be
// between 0 and 360, if it isn't this will simply return 2.
func angleToArrowDir(angle float32) int {
	if (angle > 45) && (angle <= 135) {
		return 1
	} else if (angle > 135) && (angle <= 225) {
		return 0
	} else if (angle > 225) && (angle < 315) {
		return 3
	}
	return 2
}

func getArrowForAngle(angle float32, arrowColor color.Color) image.Image {
	switch angleToArrowDir(angle) {
	case 0:
		return image_utils.LeftArrow(arrowColor)
	case 1:
		return image_utils.UpArrow(arrowColor)
	case 3:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the direction of the given angle, or at least
// as close to it as we can get. The given angle must be between 0 and 360
// (inclusive).
func getOutlinedArrow(angle float32, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForAngle(angle, arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForAngle(angle, color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, angle float32, away bool) image.Point {
	halfLength := arrowLength / 2
	switch angleToArrowDir(angle) {
	case 0:
		// Pointing left
		if away {
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case 1:
		// Pointing up
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case 3:
		// Pointing down
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	// Pointing right
	if away {
		return image.Pt(pt.X+1, pt.Y-halfLength)
	}
	return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
}

// Adds "decorations" to the maze, including start and end arrows. Rasterizes
// the maze to an image.RGBA.
func drawMazeDecorations(m maze.Maze) (*image.RGBA, error) {
	info := m.GetInfo()
	decorated := image_utils.NewCompositeImage()
	mazePic := image_utils.ToRGBA(m)
	e := decorated.AddImage(mazePic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}

	startArrow := getOutlinedArrow(info.StartAngle, greenColor)
	startArrowPos := getArrowTopLeft(info.StartPoint, info.StartAngle,
		false)
	e = decorated.AddImage(startArrow, startArrowPos)
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}

	endArrow := getOutlinedArrow(info.EndAngle, blueColor)
	endArrowPos := getArrowTopLeft(info.EndPoint, info.EndAngle, true)
	e = decorated.AddImage(endArrow, endArrowPos)
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}

	toReturn := image_utils.ToRGBA(decorated)
	return toReturn, nil
}

// Builds a console logger at the given level (e.g. "debug" or "info").
func newLogger(level string) (logr.Logger, error) {
	lvl, e := zerolog.ParseLevel(level)
	if e != nil {
		return logr.Discard(), fmt.Errorf("Invalid log level %q: %w", level,
			e)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	zlog := zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	return zerologr.New(&zlog), nil
}

func loadTemplate(filename string) (image.Image, error) {
	f, e := os.Open(filename)
	if e != nil {
		return nil, fmt.Errorf("Error opening template image %s: %w",
			filename, e)
	}
	defer f.Close()
	pic, _, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("Error parsing template image %s: %w",
			filename, e)
	}
	return pic, nil
}

func writePNG(filename string, pic image.Image) error {
	f, e := os.Create(filename)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w", filename, e)
	}
	e = png.Encode(f, pic)
	if e != nil {
		f.Close()
		return fmt.Errorf("Error writing image to %s: %w", filename, e)
	}
	return f.Close()
}

func run() int {
	env := loadEnvDefaults("")
	defaultMaxSteps := maze.DefaultMaxSteps
	if env.MaxSteps >= 0 {
		defaultMaxSteps = env.MaxSteps
	}
	var cellsWide, cellsHigh, cellWidth, cellHeight, startX, startY, endX,
		endY, maxSteps, borderWidth int
	var randomSeed int64
	var showSolution, showDeadEnds bool
	var outFilename, templateImage, presetName, presetsFile, logLevel string
	flag.IntVar(&cellsWide, "cells_wide", 20,
		"The width of the maze, in grid cells.")
	flag.IntVar(&cellsHigh, "cells_high", 20,
		"The height of the maze, in grid cells.")
	flag.IntVar(&cellWidth, "cell_width", 9,
		"The width of a single cell, in pixels.")
	flag.IntVar(&cellHeight, "cell_height", 9,
		"The height of a single cell, in pixels.")
	flag.IntVar(&startX, "start_x", 0, "The column of the start cell.")
	flag.IntVar(&startY, "start_y", 0, "The row of the start cell.")
	flag.IntVar(&endX, "end_x", -1,
		"The column of the end cell. Defaults to the rightmost column.")
	flag.IntVar(&endY, "end_y", -1,
		"The row of the end cell. Defaults to the bottom row.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.IntVar(&maxSteps, "max_steps", defaultMaxSteps,
		"The longest path the solver will try.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, shows the solution of the maze.")
	flag.BoolVar(&showDeadEnds, "show_dead_ends", false,
		"If set, shows the dead ends explored while solving the maze.")
	flag.IntVar(&borderWidth, "border", 0,
		"The width of a white border to add around the image, in pixels.")
	flag.StringVar(&outFilename, "output_file", env.OutputFile,
		"The name of the .png file to which the maze will be saved.")
	flag.StringVar(&templateImage, "template_image", "",
		"An optional path to a PNG-format image to use as a shape "+
			"template. The maze fills the template's black areas. "+
			"cells_wide and cells_high are computed from the template "+
			"unless they are set explicitly.")
	flag.StringVar(&presetName, "preset", "",
		"The name of a preset to start from. Other flags that are set "+
			"explicitly override the preset's values.")
	flag.StringVar(&presetsFile, "presets_file", env.PresetsFile,
		"An optional YAML file containing additional presets.")
	flag.StringVar(&logLevel, "log_level", env.LogLevel,
		"The minimum level of log messages to print.")
	flag.Parse()

	log, e := newLogger(logLevel)
	if e != nil {
		fmt.Println(e)
		return 1
	}
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	// Without a preset every flag applies; with one, only explicit flags do.
	chosen := func(name string) bool {
		return (presetName == "") || explicit[name]
	}

	cfg := maze.DefaultConfig()
	if presetName != "" {
		ps, e := loadPresets(presetsFile)
		if e != nil {
			log.Error(e, "Failed loading presets")
			return 1
		}
		p, e := ps.get(presetName)
		if e != nil {
			log.Error(e, "Invalid preset")
			return 1
		}
		cfg = p.Config
		if !explicit["template_image"] {
			templateImage = p.TemplateImage
		}
	}
	if chosen("cell_width") {
		cfg.CellWidth = cellWidth
	}
	if chosen("cell_height") {
		cfg.CellHeight = cellHeight
	}
	if explicit["cells_wide"] || ((presetName == "") && (templateImage == "")) {
		cfg.GridWidth = cellsWide
	}
	if explicit["cells_high"] || ((presetName == "") && (templateImage == "")) {
		cfg.GridHeight = cellsHigh
	}
	if chosen("start_x") {
		cfg.Start.X = startX
	}
	if chosen("start_y") {
		cfg.Start.Y = startY
	}
	if chosen("end_x") {
		cfg.End.X = endX
	}
	if chosen("end_y") {
		cfg.End.Y = endY
	}
	if chosen("random_seed") {
		cfg.RandomSeed = randomSeed
	}
	if chosen("max_steps") {
		cfg.MaxSteps = maxSteps
	}
	if outFilename == "" {
		log.Error(fmt.Errorf("missing output_file"), "Invalid or missing "+
			"argument. Run with -help for more information.")
		return 1
	}

	var templatePic image.Image
	if templateImage != "" {
		templatePic, e = loadTemplate(templateImage)
		if e != nil {
			log.Error(e, "Failed loading template")
			return 1
		}
		// Only dimensions that weren't chosen come from the template.
		cfg.SizeToTemplate(templatePic)
	}
	if cfg.End.X < 0 {
		cfg.End.X = cfg.GridWidth - 1
	}
	if cfg.End.Y < 0 {
		cfg.End.Y = cfg.GridHeight - 1
	}

	var m *maze.GridMaze
	mazeLog := log.WithName("maze")
	if templatePic != nil {
		m, e = maze.NewGridMazeFromTemplate(templatePic, cfg,
			maze.WithLogr(mazeLog))
	} else {
		m, e = maze.NewGridMaze(cfg, nil, maze.WithLogr(mazeLog))
	}
	if e != nil {
		log.Error(e, "Failed generating maze")
		return 1
	}
	log.Info("Generated maze", "info", m.GetInfo().DebugInfo)

	if showSolution || showDeadEnds {
		log.Info("Finding solution to the maze")
		found, e := m.Solve(nil)
		if e != nil {
			log.Error(e, "Failed solving maze")
			return 1
		}
		if !found {
			log.Info("No path found", "maxSteps", cfg.MaxSteps)
		}
		m.ShowDeadEnds(showDeadEnds)
		e = m.ShowSolution(showSolution)
		if e != nil {
			log.Error(e, "Error showing solution")
			return 1
		}
	}
	finalPic, e := drawMazeDecorations(m)
	if e != nil {
		log.Error(e, "Error adding maze decorations")
		return 1
	}
	var toWrite image.Image = finalPic
	if borderWidth > 0 {
		toWrite = maze.AddImageBorder(finalPic, borderWidth, color.White)
	}
	e = writePNG(outFilename, toWrite)
	if e != nil {
		log.Error(e, "Failed saving maze")
		return 1
	}
	log.Info("Image written OK", "file", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
