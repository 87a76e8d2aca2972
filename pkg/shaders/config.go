package shaders

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ConfigFile is looked up in the shader root directory
const ConfigFile = "shaders.yml"

// Config contains the settings read from shaders.yml
type Config struct {
	// Compiler is a shell-style command line, see NewGLSLValidator
	Compiler string
	// Ignore lists groups (directory names) that should never be scanned
	Ignore []string `yaml:"ignore,omitempty"`
}

// DefaultConfig returns the settings used if there's no shaders.yml
func DefaultConfig() Config {
	return Config{
		Compiler: DefaultCompiler,
	}
}

// LoadConfig reads shaders.yml from root. A missing file is not an error.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()
	cfgPath := filepath.Join(root, ConfigFile)
	cfgData, err := ioutil.ReadFile(cfgPath)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, eris.Wrapf(err, "Could not open file %s.", cfgPath)
	}

	err = yaml.Unmarshal(cfgData, &cfg)
	if err != nil {
		return cfg, eris.Wrapf(err, "Failed to parse %s.", cfgPath)
	}

	return cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Compiler) == "" {
		return eris.New("Invalid value for compiler: must not be empty")
	}

	for _, name := range cfg.Ignore {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return eris.Errorf("Invalid value for ignore: %q is not a directory name", name)
		}
	}

	return nil
}
