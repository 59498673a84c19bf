package config

import (
	"flag"
	"github.com/fernandosanchezjr/godprng/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", path.Join(utils.DefaultHomeFolder, "config.yaml"), "specify config file")
}

func Path() string {
	if expanded, err := utils.ExpandPath(configPath); err == nil {
		return expanded
	}
	return configPath
}

// LoadConfig reads the file named by -config. A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	return LoadFile(Path())
}

func LoadFile(filePath string) (*Config, error) {
	var data []byte
	var err error
	log.WithField("path", filePath).Println("Loading config")
	if data, err = ioutil.ReadFile(filePath); err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", filePath).Warn("Config not found, using defaults")
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
