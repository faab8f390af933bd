package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownModel is returned by Lookup when the requested camera model
// is not part of the catalog.
var ErrUnknownModel = errors.New("unknown camera model")

// Spec is one row of a camera's printed specification table.
// Rows are display-only and keep the order they were declared in.
type Spec struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Profile describes the operating envelope of one camera model:
// achievable field of view at the minimum and maximum supported
// mounting distance, and the sensor pixel counts. All distances and
// FOV extents are in millimeters.
type Profile struct {
	Model string `yaml:"-" json:"model"` // filled from the catalog key

	Image string `yaml:"image" json:"image"` // picture file name, display only

	MinFovX float64 `yaml:"min_fov_x" json:"min_fov_x"` // horizontal FOV at MinDist
	MaxFovX float64 `yaml:"max_fov_x" json:"max_fov_x"` // horizontal FOV at MaxDist
	MinFovY float64 `yaml:"min_fov_y" json:"min_fov_y"` // vertical FOV at MinDist
	MaxFovY float64 `yaml:"max_fov_y" json:"max_fov_y"` // vertical FOV at MaxDist

	MinDist float64 `yaml:"min_dist" json:"min_dist"`
	MaxDist float64 `yaml:"max_dist" json:"max_dist"`

	ResolutionH int `yaml:"resolution_h" json:"resolution_h"` // sensor pixels, horizontal
	ResolutionV int `yaml:"resolution_v" json:"resolution_v"` // sensor pixels, vertical

	Specs []Spec `yaml:"specs" json:"specs"`
}

// AspectRatio returns the sensor pixel aspect ratio (horizontal over
// vertical), or 0 when the vertical pixel count is not set.
func (p Profile) AspectRatio() float64 {
	if p.ResolutionV == 0 {
		return 0
	}
	return float64(p.ResolutionH) / float64(p.ResolutionV)
}

// Catalog is an immutable set of camera profiles keyed by model name.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	profiles map[string]Profile
}

// catalogFile is the on-disk YAML layout.
type catalogFile struct {
	Cameras map[string]Profile `yaml:"cameras"`
}

//go:embed catalog.yaml
var builtinYAML []byte

var builtin *Catalog

func init() {
	c, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in data is invalid: %v", err))
	}
	builtin = c
}

// Default returns the built-in catalog compiled into the binary.
func Default() *Catalog {
	return builtin
}

// Load reads a YAML catalog file and validates every profile.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if len(f.Cameras) == 0 {
		return nil, fmt.Errorf("catalog contains no cameras")
	}

	profiles := make(map[string]Profile, len(f.Cameras))
	for model, p := range f.Cameras {
		p.Model = model
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("camera %q: %w", model, err)
		}
		profiles[model] = p
	}

	return &Catalog{profiles: profiles}, nil
}

// validateProfile checks the invariants the interpolation engine relies
// on: non-degenerate distance and FOV ranges, positive pixel counts.
func validateProfile(p Profile) error {
	if p.MaxDist <= p.MinDist {
		return fmt.Errorf("max_dist (%g) must be greater than min_dist (%g)", p.MaxDist, p.MinDist)
	}
	if p.MaxFovX <= p.MinFovX {
		return fmt.Errorf("max_fov_x (%g) must be greater than min_fov_x (%g)", p.MaxFovX, p.MinFovX)
	}
	if p.MaxFovY <= p.MinFovY {
		return fmt.Errorf("max_fov_y (%g) must be greater than min_fov_y (%g)", p.MaxFovY, p.MinFovY)
	}
	if p.ResolutionH <= 0 {
		return fmt.Errorf("resolution_h must be > 0, got %d", p.ResolutionH)
	}
	if p.ResolutionV <= 0 {
		return fmt.Errorf("resolution_v must be > 0, got %d", p.ResolutionV)
	}
	for i, s := range p.Specs {
		if s.Label == "" {
			return fmt.Errorf("spec row %d has an empty label", i)
		}
	}
	return nil
}

// Models returns the model names in sorted order.
func (c *Catalog) Models() []string {
	models := make([]string, 0, len(c.profiles))
	for m := range c.profiles {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// Lookup returns the profile for the given model name.
// An unknown model is an integration error and fails fast with
// ErrUnknownModel; callers must not substitute a default camera.
func (c *Catalog) Lookup(model string) (Profile, error) {
	p, ok := c.profiles[model]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return p, nil
}

// Len returns the number of profiles in the catalog.
func (c *Catalog) Len() int {
	return len(c.profiles)
}
