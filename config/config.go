package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Version set at build time with -ldflags
var Version = "dev"

// Settings picbatch defaults, overridable from environment with
// prefix PICBATCH_, e.g. PICBATCH_QUALITY=50. Command flags take
// precedence over these.
type Settings struct {
	MaxWidth  int `envconfig:"MAX_WIDTH" default:"600"`
	MaxHeight int `envconfig:"MAX_HEIGHT" default:"600"`
	Quality   int `envconfig:"QUALITY" default:"60"`

	UltraMaxWidth  int `envconfig:"ULTRA_MAX_WIDTH" default:"400"`
	UltraMaxHeight int `envconfig:"ULTRA_MAX_HEIGHT" default:"400"`
	UltraQuality   int `envconfig:"ULTRA_QUALITY" default:"40"`

	Folders []string `envconfig:"FOLDERS" default:"muffin,chihuahua"`

	Develop bool `envconfig:"DEVELOP"`
}

// Current ...
var Current Settings

func init() {
	envconfig.MustProcess("picbatch", &Current)
}

// InDevelop ...
func InDevelop() bool {
	if Current.Develop {
		return true
	}
	return os.Getenv("PICBATCH_ENV") == "develop"
}
