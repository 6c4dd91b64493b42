package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"
)

const (
	WindowTitle  = "VISAGE ANIME"
	WindowWidth  = 512
	WindowHeight = 512

	// Frame pacing of the single-face and two-face scenes.
	FrameDelay    = 30 * time.Millisecond
	TwoFacesDelay = 50 * time.Millisecond

	// Face geometry
	MinFaceWidth      = 15
	MinFaceHeight     = 15
	DefaultFaceWidth  = 100
	DefaultFaceHeight = 100
	DefaultStep       = 5

	// Contact flash and bounce click
	FlashFrames     = 12
	SoundSampleRate = 44100
	ClickDuration   = 40 * time.Millisecond
	ClickFrequency  = 660

	// Headless export
	DefaultExportFrames = 100
)

var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	FaceFill   = color.RGBA{R: 255, G: 175, B: 175, A: 255} // pink
	FaceInk    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	FaceGlow   = color.RGBA{R: 255, G: 236, B: 120, A: 255}
)

// Stepping policies.
const (
	PolicyBoth = "both" // reflect both components when any edge is touched, then move
	PolicyAxis = "axis" // reflect per axis from the pre-move position, then move
)

// Scene presets.
const (
	PresetOne = "one"
	PresetTwo = "two"
)

var (
	ErrUnknownPolicy = errors.New("unknown stepping policy")
	ErrUnknownPreset = errors.New("unknown scene preset")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrBadFrames     = errors.New("invalid export frame count")
	ErrSceneConflict = errors.New("-scene and -preset are mutually exclusive")
)

// Face is the initial placement of one face. Missing size or velocity
// fields take the face defaults.
type Face struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
	Dx     *int `json:"dx,omitempty"`
	Dy     *int `json:"dy,omitempty"`
}

// Scene is the JSON scene file layout.
type Scene struct {
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	DelayMS int    `json:"delay_ms,omitempty"`
	Policy  string `json:"policy,omitempty"`
	Faces   []Face `json:"faces"`
}

type Config struct {
	Width  int
	Height int
	Delay  time.Duration
	Policy string
	Faces  []Face

	SceneFile string
	Sound     bool
	Terminal  bool
	HUD       bool
	Verbose   bool

	ExportDir    string
	ExportFormat string
	ExportFrames int
}

// Load parses args (without the program name) and merges the optional scene
// file underneath them: a flag given explicitly always wins.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("faces", flag.ContinueOnError)
	scenePtr := fs.String("scene", "", "JSON scene file")
	presetPtr := fs.String("preset", PresetOne, "built-in scene: one|two (not with -scene)")
	widthPtr := fs.Int("width", WindowWidth, "canvas width")
	heightPtr := fs.Int("height", WindowHeight, "canvas height")
	delayPtr := fs.Duration("delay", 0, "frame delay (default depends on the preset)")
	policyPtr := fs.String("policy", PolicyBoth, "stepping policy: both|axis")
	soundPtr := fs.Bool("sound", false, "play a click on every bounce")
	termPtr := fs.Bool("term", false, "render in the terminal instead of a window")
	hudPtr := fs.Bool("hud", false, "show the status line")
	verbosePtr := fs.Bool("v", false, "debug logging")
	exportPtr := fs.String("export", "", "write frames to this directory and exit")
	formatPtr := fs.String("format", "png", "export format: png|svg")
	framesPtr := fs.Int("frames", DefaultExportFrames, "[export] number of frames")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf := Config{
		Width:        *widthPtr,
		Height:       *heightPtr,
		Policy:       *policyPtr,
		SceneFile:    *scenePtr,
		Sound:        *soundPtr,
		Terminal:     *termPtr,
		HUD:          *hudPtr,
		Verbose:      *verbosePtr,
		ExportDir:    *exportPtr,
		ExportFormat: *formatPtr,
		ExportFrames: *framesPtr,
	}

	var err error
	conf.Faces, conf.Delay, err = Preset(*presetPtr, conf.Width, conf.Height)
	if err != nil {
		return Config{}, err
	}

	if len(conf.SceneFile) > 0 {
		if set["preset"] {
			return Config{}, ErrSceneConflict
		}
		sc, err := ReadScene(conf.SceneFile)
		if err != nil {
			return Config{}, err
		}
		if sc.Width > 0 && !set["width"] {
			conf.Width = sc.Width
		}
		if sc.Height > 0 && !set["height"] {
			conf.Height = sc.Height
		}
		if sc.DelayMS > 0 {
			conf.Delay = time.Duration(sc.DelayMS) * time.Millisecond
		}
		if len(sc.Policy) > 0 && !set["policy"] {
			conf.Policy = sc.Policy
		}
		conf.Faces = sc.Faces
	}

	if set["delay"] {
		conf.Delay = *delayPtr
	}

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Policy {
	case PolicyBoth, PolicyAxis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Policy)
	}
	switch c.ExportFormat {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.ExportFormat)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.Delay < 0 {
		return fmt.Errorf("invalid frame delay %v", c.Delay)
	}
	if c.ExportFrames < 0 {
		return fmt.Errorf("%w: %d", ErrBadFrames, c.ExportFrames)
	}
	return nil
}

// Preset returns the faces and frame delay of a built-in scene laid out on a
// canvas of the given size.
func Preset(name string, width, height int) ([]Face, time.Duration, error) {
	switch name {
	case PresetOne:
		return []Face{{}}, FrameDelay, nil
	case PresetTwo:
		// The second face starts just above the bottom edge, moving up.
		up := -DefaultStep
		return []Face{
			{},
			{X: width / 2, Y: height - DefaultFaceHeight - 1, Dy: &up},
		}, TwoFacesDelay, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ReadScene decodes a scene file.
func ReadScene(fn string) (sc Scene, err error) {
	file, err := os.Open(fn)
	if err != nil {
		return sc, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&sc); err != nil {
		return sc, fmt.Errorf("read scene %s: %w", fn, err)
	}
	return sc, nil
}
