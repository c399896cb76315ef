package level

import (
	"fmt"
	"os"

	"wallcaster/internal/geom"
	"wallcaster/internal/media"
	"wallcaster/internal/texture"

	"gopkg.in/yaml.v3"
)

// levelFile mirrors the on-disk YAML level format.
type levelFile struct {
	Textures map[string]textureEntry `yaml:"textures"`
	Floor    string                  `yaml:"floor"`
	Ceiling  string                  `yaml:"ceiling"`
	Sky      string                  `yaml:"sky"`
	Walls    []wallEntry             `yaml:"walls"`
	Sprites  []spriteEntry           `yaml:"sprites"`
}

// textureEntry binds a texture name to either an image file or a procedural
// generator.
type textureEntry struct {
	File      string `yaml:"file"`
	Generated string `yaml:"generated"`
}

type wallEntry struct {
	Start   [2]float64 `yaml:"start"`
	End     [2]float64 `yaml:"end"`
	Height  float64    `yaml:"height"`
	Color   [3]int     `yaml:"color"`
	Texture string     `yaml:"texture"`
}

type spriteEntry struct {
	Texture  string     `yaml:"texture"`
	Position [2]float64 `yaml:"position"`
	Size     float64    `yaml:"size"`
	Height   float64    `yaml:"height"`
}

// Load reads a YAML level, loads or generates every referenced texture, and
// resolves the wall/sprite lists. Any missing texture reference or decode
// failure is an error; callers treat load failure as fatal at startup.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %q: %w", path, err)
	}

	var file levelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse level %q: %w", path, err)
	}

	textures := make(map[string]*texture.Texture, len(file.Textures))
	for name, entry := range file.Textures {
		var img *media.Image
		switch {
		case entry.File != "":
			img, err = media.LoadImage(entry.File)
		case entry.Generated != "":
			img, err = media.Generate(entry.Generated)
		default:
			err = fmt.Errorf("texture %q: neither file nor generated set", name)
		}
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", path, err)
		}
		textures[name] = texture.New(img)
	}

	resolve := func(name, role string, required bool) (*texture.Texture, error) {
		if name == "" {
			if required {
				return nil, fmt.Errorf("level %q: no %s texture bound", path, role)
			}
			return nil, nil
		}
		tex, ok := textures[name]
		if !ok {
			return nil, fmt.Errorf("level %q: %s references unknown texture %q", path, role, name)
		}
		return tex, nil
	}

	lvl := &Level{}
	if lvl.Floor, err = resolve(file.Floor, "floor", true); err != nil {
		return nil, err
	}
	if lvl.Ceiling, err = resolve(file.Ceiling, "ceiling", false); err != nil {
		return nil, err
	}
	if lvl.Sky, err = resolve(file.Sky, "sky", true); err != nil {
		return nil, err
	}

	for i, w := range file.Walls {
		tex, err := resolve(w.Texture, fmt.Sprintf("wall %d", i), false)
		if err != nil {
			return nil, err
		}
		height := w.Height
		if height == 0 {
			height = 1
		}
		lvl.Walls = append(lvl.Walls, Wall{
			Segment: geom.Segment{
				Start: geom.Vec2{X: w.Start[0], Y: w.Start[1]},
				End:   geom.Vec2{X: w.End[0], Y: w.End[1]},
			},
			Height:  height,
			Color:   media.Color{R: uint8(w.Color[0]), G: uint8(w.Color[1]), B: uint8(w.Color[2]), A: 255},
			Texture: tex,
		})
	}

	for i, s := range file.Sprites {
		tex, err := resolve(s.Texture, fmt.Sprintf("sprite %d", i), true)
		if err != nil {
			return nil, err
		}
		size := s.Size
		if size == 0 {
			size = 1
		}
		lvl.Sprites = append(lvl.Sprites, Sprite{
			Texture:  tex,
			Position: geom.Vec2{X: s.Position[0], Y: s.Position[1]},
			Size:     size,
			Height:   s.Height,
		})
	}

	return lvl, nil
}

// MustLoad loads a level and panics on failure.
func MustLoad(path string) *Level {
	lvl, err := Load(path)
	if err != nil {
		panic("Failed to load level: " + err.Error())
	}
	return lvl
}
