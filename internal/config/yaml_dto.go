package config

// YAMLRun is the on-disk shape of a run file.
type YAMLRun struct {
	Name      string      `yaml:"name"`
	Bases     []int       `yaml:"bases"`
	BaseRange *YAMLRange  `yaml:"base_range"`
	Start     string      `yaml:"start"`
	Count     *int        `yaml:"count"`
	MinDigits *int        `yaml:"min_digits"`
	Target    string      `yaml:"target"`
	Depth     int         `yaml:"depth"`
	Workers   int         `yaml:"workers"`
	Output    YAMLOutput  `yaml:"output"`
	Logging   YAMLLogging `yaml:"logging"`
}

// YAMLRange is an inclusive base range.
type YAMLRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// YAMLOutput selects which artefacts are written.
type YAMLOutput struct {
	Dir        string `yaml:"dir"`
	Threads    bool   `yaml:"threads"`
	GraphML    bool   `yaml:"graphml"`
	Candidates bool   `yaml:"candidates"`
	Density    bool   `yaml:"density"`
}

// YAMLLogging configures the process logger.
type YAMLLogging struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}
