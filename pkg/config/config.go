// Package config reads frame construction defaults from an ini file,
// the same format classic CAN tooling keeps in ~/.can/can.conf :
//
//	[default]
//	interface = socketcan
//	channel = can0
//	bitrate = 500000
//	fd = true
//	strict = false
package config

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/gocan/canmsg/pkg/frame"
)

// Config holds the defaults applied to constructed frames. Interface
// and Bitrate are carried for the drivers reading the same file, the
// frame itself only uses Channel, FD and Strict.
type Config struct {
	Interface string
	Channel   string
	Bitrate   int
	FD        bool
	Strict    bool
}

// Load reads the configuration from an ini file on disk.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return parse(file), nil
}

// LoadFrom reads the configuration from raw ini contents.
func LoadFrom(src []byte) (*Config, error) {
	file, err := ini.Load(src)
	if err != nil {
		return nil, err
	}
	return parse(file), nil
}

func parse(file *ini.File) *Config {
	config := &Config{}
	for _, key := range file.Section("default").Keys() {
		switch key.Name() {
		case "interface":
			config.Interface = key.String()
		case "channel":
			config.Channel = key.String()
		case "bitrate":
			config.Bitrate = key.MustInt(0)
		case "fd":
			config.FD = key.MustBool(false)
		case "strict":
			config.Strict = key.MustBool(false)
		default:
			log.Warnf("unknown configuration key : %v", key.Name())
		}
	}
	return config
}

// FrameOptions returns the configured defaults as construction
// options, to be placed before any per frame options.
func (config *Config) FrameOptions() []frame.Option {
	opts := []frame.Option{}
	if config.Channel != "" {
		opts = append(opts, frame.WithChannel(config.Channel))
	}
	if config.FD {
		opts = append(opts, frame.WithFD())
	}
	return opts
}

// Build constructs a frame with the configured defaults applied
// first, validating it when Strict is set.
func (config *Config) Build(opts ...frame.Option) (*frame.Frame, error) {
	all := append(config.FrameOptions(), opts...)
	if config.Strict {
		return frame.NewChecked(all...)
	}
	return frame.New(all...)
}
