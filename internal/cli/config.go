package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikimap/pkg/cache"
	werrors "github.com/matzehuels/wikimap/pkg/errors"
	"github.com/matzehuels/wikimap/pkg/metadata"
	"github.com/matzehuels/wikimap/pkg/people"
	"github.com/matzehuels/wikimap/pkg/render/dot"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

// Person detectors selectable in the config file.
const (
	detectorProse   = "prose"
	detectorLexicon = "lexicon"
)

// config mirrors wikimap.toml:
//
//	[render]
//	wrap_width = 24
//	default_color = "black"
//
//	[render.colors]
//	draft = "gray40"
//
//	[metadata]
//	salience = 25.0
//	detector = "lexicon"
//	people = ["Alice", "Bob"]
type config struct {
	Render   renderConfig   `toml:"render"`
	Metadata metadataConfig `toml:"metadata"`
}

type renderConfig struct {
	WrapWidth    int               `toml:"wrap_width"`
	DefaultColor string            `toml:"default_color"`
	Colors       map[string]string `toml:"colors"`
}

type metadataConfig struct {
	Salience float64  `toml:"salience"`
	Detector string   `toml:"detector"`
	People   []string `toml:"people"`
}

// loadConfig decodes the config file at path. An empty path reads
// wikimap.toml from the working directory if it exists. Unknown keys are
// rejected so typos do not pass silently.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return config{}, nil
	default:
		return config{}, werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, werrors.New(werrors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if md.IsDefined("metadata", "salience") {
		if err := checkSalience(cfg.Metadata.Salience); err != nil {
			return config{}, werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	if err := cfg.validate(); err != nil {
		return config{}, werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// checkSalience validates an explicitly set salience. Zero means "unset"
// in [metadata.Options], so an explicit zero is rejected rather than
// silently replaced by the default.
func checkSalience(v float64) error {
	if v <= 0 || v >= 100 {
		return errors.New("metadata.salience must be in (0, 100)")
	}
	return nil
}

func (c config) validate() error {
	if c.Render.WrapWidth < 0 {
		return errors.New("render.wrap_width must not be negative")
	}
	if c.Metadata.Salience != 0 {
		if err := checkSalience(c.Metadata.Salience); err != nil {
			return err
		}
	}
	switch c.Metadata.Detector {
	case "", detectorProse, detectorLexicon:
	default:
		return errors.New("metadata.detector must be \"prose\" or \"lexicon\"")
	}
	return nil
}

func (c config) renderOptions() dot.Options {
	opts := dot.Options{
		WrapWidth:    c.Render.WrapWidth,
		DefaultColor: c.Render.DefaultColor,
	}
	if len(c.Render.Colors) > 0 {
		opts.Colors = make(map[wiki.Status]string, len(c.Render.Colors))
		for status, color := range c.Render.Colors {
			opts.Colors[wiki.ParseStatus(status)] = color
		}
	}
	return opts
}

func (c config) metadataOptions() metadata.Options {
	return metadata.Options{Salience: c.Metadata.Salience}
}

// detector returns the configured person detector. Prose results are
// cached in store; the lexicon detector is cheap enough to run every time.
func (c config) detector(store cache.Cache, logger *log.Logger) people.Detector {
	if c.Metadata.Detector == detectorLexicon {
		return people.NewLexiconDetector(c.Metadata.People...)
	}
	return people.NewCachedDetector(people.NewProseDetector(), store, detectorProse, logger)
}

