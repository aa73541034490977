package schema

// Configuration is the merged stopwatch configuration from defaults,
// config files, environment variables and flags.
type Configuration struct {
	Logs     Logs     `yaml:"logs" json:"logs" mapstructure:"logs"`
	Settings Settings `yaml:"settings" json:"settings" mapstructure:"settings"`

	// ConfigFileUsed is the path of the config file that was read, if any.
	ConfigFileUsed string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

type Settings struct {
	Terminal Terminal `yaml:"terminal" json:"terminal" mapstructure:"terminal"`
}

type Terminal struct {
	Theme     string `yaml:"theme" json:"theme" mapstructure:"theme"`
	NoColor   bool   `yaml:"no_color" json:"no_color" mapstructure:"no_color"`
	AltScreen bool   `yaml:"alt_screen" json:"alt_screen" mapstructure:"alt_screen"`
}
