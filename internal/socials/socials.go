package socials

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where an optional descriptor override lives, relative to the working directory.
const DefaultPath = "assets/socials.yaml"

// Link describes one social profile shown as a cube: display name, RGB colour (0xRRGGBB),
// target URL, world position and the label painted on the cube faces.
type Link struct {
	Name     string
	Color    uint32
	URL      string
	Position [3]float64
	Icon     string
}

// linkDef is the YAML form of a Link (e.g. assets/socials.yaml). Color is "#RRGGBB" or "0xRRGGBB".
type linkDef struct {
	Name     string     `yaml:"name"`
	Color    string     `yaml:"color"`
	URL      string     `yaml:"url,omitempty"`
	Position [3]float64 `yaml:"position"`
	Icon     string     `yaml:"icon,omitempty"`
}

type fileDef struct {
	Socials []linkDef `yaml:"socials"`
}

// Defaults returns the built-in social links. The slice is freshly allocated on every call.
func Defaults() []Link {
	return []Link{
		{Name: "Twitch", Color: 0x9146FF, URL: "https://twitch.tv/shenanigans3d", Position: [3]float64{-6, 0, 0}, Icon: "Twitch"},
		{Name: "YouTube", Color: 0xFF0000, URL: "https://www.youtube.com/@Shenanigans3D", Position: [3]float64{-3, 2, -2}, Icon: "YouTube"},
		{Name: "Thangs", Color: 0x00E676, URL: "https://thangs.com/designer/shenanigans3d", Position: [3]float64{0, 0, 0}, Icon: "Thangs"},
		{Name: "Twitter", Color: 0x1DA1F2, URL: "https://twitter.com/shenanigans3d", Position: [3]float64{3, 2, -2}, Icon: "Twitter"},
		{Name: "TikTok", Color: 0xFF0050, URL: "https://www.tiktok.com/@shenanigans3d", Position: [3]float64{6, 0, 0}, Icon: "TikTok"},
	}
}

// Load reads links from a YAML file. A missing file is not an error: Defaults() is returned.
// Any other read or parse failure returns Defaults() together with the error so the caller can log it.
func Load(path string) ([]Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read socials %s: %w", path, err)
	}
	links, err := Parse(data)
	if err != nil {
		return Defaults(), fmt.Errorf("parse socials %s: %w", path, err)
	}
	return links, nil
}

// Parse decodes a socials YAML document. An empty list is an error; a link without a URL is kept
// (clicking it does nothing).
func Parse(data []byte) ([]Link, error) {
	var f fileDef
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Socials) == 0 {
		return nil, errors.New("no socials defined")
	}
	out := make([]Link, 0, len(f.Socials))
	for i, d := range f.Socials {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("social %d: missing name", i)
		}
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("social %q: %w", name, err)
		}
		icon := d.Icon
		if icon == "" {
			icon = name
		}
		out = append(out, Link{
			Name:     name,
			Color:    c,
			URL:      strings.TrimSpace(d.URL),
			Position: d.Position,
			Icon:     icon,
		})
	}
	return out, nil
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
