// Package config provides configuration loading and shared configuration
// types for hue-dispatch binaries.
//
// Usage:
//
//	import "github.com/tbaccus/hue-dispatch/pkg/config"
//
//	type MyConfig struct {
//	    Bridge   config.BridgeConfig   `yaml:"bridge" mapstructure:"bridge"`
//	    Dispatch config.DispatchConfig `yaml:"dispatch" mapstructure:"dispatch"`
//	    Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    return cfg, nil
//	}
package config
