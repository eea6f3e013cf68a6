// Package sigconfig loads sigview's persistent configuration file.
package sigconfig

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".sigview"
	configFile string = "config.yml"
)

// Config defines all configuration options available to be set through the
// config file.
type Config struct {
	// SearchPaths is the list of directories sigview searches, in order,
	// when a bare file name is passed to "sigview parse" instead of a path.
	SearchPaths []string `yaml:"search-paths"`

	// Color controls whether CLI output is colorized. A nil value means
	// "auto" (colorize when stdout is a terminal).
	Color *bool `yaml:"color,omitempty"`

	// MaxFunctionsListed caps how many public functions are printed per
	// module before the listing is elided with a "... N more" line.
	MaxFunctionsListed int `yaml:"max-functions-listed"`
}

// LoadConfig attempts to populate a Config object from the config.yml file,
// creating a default one on first run.
func LoadConfig() *Config {
	if err := createConfigPath(); err != nil {
		fmt.Printf("Could not create config directory: %v.\n", err)
		return defaultConfig()
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		fmt.Printf("Unable to get config file path: %v.\n", err)
		return defaultConfig()
	}

	f, err := os.Open(fullConfigFile)
	if err != nil {
		f, err = createDefaultConfig(fullConfigFile)
		if err != nil {
			fmt.Printf("Error creating default config file: %v\n", err)
			return defaultConfig()
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Closing config file failed: %v.\n", err)
		}
	}()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		fmt.Printf("Unable to read config data: %v.\n", err)
		return defaultConfig()
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		fmt.Printf("Unable to decode config file: %v.\n", err)
		return defaultConfig()
	}
	return c
}

// SaveConfig marshals and saves the config struct to disk.
func SaveConfig(conf *Config) error {
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(*conf)
	if err != nil {
		return err
	}

	f, err := os.Create(fullConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(out)
	return err
}

func defaultConfig() *Config {
	return &Config{MaxFunctionsListed: 32}
}

func createDefaultConfig(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create config file: %v", err)
	}
	if err := writeDefaultConfig(f); err != nil {
		return nil, fmt.Errorf("unable to write default configuration: %v", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	return f, nil
}

func writeDefaultConfig(f *os.File) error {
	_, err := f.WriteString(
		`# Configuration file for sigview.

# This is the default configuration file. Available options are provided,
# but disabled. Delete the leading hash mark to enable an item.

# Directories to search when "sigview parse" is given a bare file name
# rather than a path.
search-paths:
  # - /usr/share/idasigs

# Force-enable or disable colorized output (default: auto-detect terminal).
# color: true

# Maximum number of public functions to print per module before eliding
# the rest with a summary line.
max-functions-listed: 32
`)
	return err
}

// createConfigPath creates the directory structure at which all config
// files are saved.
func createConfigPath() error {
	path, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0700)
}

// GetConfigFilePath returns the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	userHomeDir := "."
	usr, err := user.Current()
	if err == nil {
		userHomeDir = usr.HomeDir
	}
	return path.Join(userHomeDir, configDir, file), nil
}
