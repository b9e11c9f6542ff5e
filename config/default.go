package config

import "github.com/zxfonline/microrand/random"

var _default *Config

// InitConfig loads fname as the process-wide stream table.
func InitConfig(fname string) (cfg *Config, err error) {
	cfg, err = Load(fname)
	if err != nil {
		return
	}
	_default = cfg
	return
}

// Generator builds a generator for name from the table set by InitConfig.
func Generator(name string) (*random.Generator, error) {
	if _default == nil {
		return nil, ErrUnknownStream
	}
	s, err := _default.Stream(name)
	if err != nil {
		return nil, err
	}
	return s.Generator()
}
