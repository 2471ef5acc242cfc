package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name             string  `yaml:"name"`
	MoveSpeed        float64 `yaml:"move_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	EyeHeight        float64 `yaml:"eye_height"`
	HalfWidth        float64 `yaml:"half_width"`
	Height           float64 `yaml:"height"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CoinSpec struct {
	Name          string  `yaml:"name"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Tube          float64 `yaml:"tube"`
	CaptureRadius float64 `yaml:"capture_radius"`
	SpinSpeed     float64 `yaml:"spin_speed"`
	Color         string  `yaml:"color"`
}

func LoadCoinSpec() (*CoinSpec, error) {
	spec, err := LoadSpec[CoinSpec]("coin.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WallSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Color  string  `yaml:"color"`
}

func LoadWallSpec() (*WallSpec, error) {
	spec, err := LoadSpec[WallSpec]("wall.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type FloorSpec struct {
	Name  string  `yaml:"name"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
	Color string  `yaml:"color"`
}

func LoadFloorSpec() (*FloorSpec, error) {
	spec, err := LoadSpec[FloorSpec]("floor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name string  `yaml:"name"`
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// GameSpec holds session-wide rules and scene lighting.
type GameSpec struct {
	CoinCount          int     `yaml:"coin_count"`
	WallNudge          float64 `yaml:"wall_nudge"`
	SkyColor           string  `yaml:"sky_color"`
	AmbientIntensity   float64 `yaml:"ambient_intensity"`
	DirectionalLight   float64 `yaml:"directional_intensity"`
	StatusScript       string  `yaml:"status_script"`
	WinMessageOverride string  `yaml:"win_message"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Specs bundles every prefab the session needs.
type Specs struct {
	Player *PlayerSpec
	Coin   *CoinSpec
	Wall   *WallSpec
	Floor  *FloorSpec
	Camera *CameraSpec
	Game   *GameSpec
}

func LoadAll() (*Specs, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	coin, err := LoadCoinSpec()
	if err != nil {
		return nil, err
	}
	wall, err := LoadWallSpec()
	if err != nil {
		return nil, err
	}
	floor, err := LoadFloorSpec()
	if err != nil {
		return nil, err
	}
	camera, err := LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	game, err := LoadGameSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Player: player, Coin: coin, Wall: wall, Floor: floor, Camera: camera, Game: game}, nil
}

// ParseHexColor parses "#RRGGBB", "0xRRGGBB" or "RRGGBB" with an optional
// trailing alpha byte.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorOr parses s and falls back to def when s is empty or malformed.
func ColorOr(s string, def color.RGBA) color.RGBA {
	if strings.TrimSpace(s) == "" {
		return def
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return def
	}
	return c
}
