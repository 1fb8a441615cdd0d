package config

// HostConfig is the root config for host.json
type HostConfig struct {
	Display  DisplayConfig  `json:"display"`
	Reload   ReloadConfig   `json:"reload"`
	Audio    AudioConfig    `json:"audio"`
	Terminal TerminalConfig `json:"terminal"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        float64 `json:"scale"`     // window size multiplier
	FontScale    float64 `json:"fontScale"` // bitmap font magnification
	Framerate    int     `json:"framerate"`
	Title        string  `json:"title"`
}

// ReloadConfig locates the scene module and sets the change-poll cadence
type ReloadConfig struct {
	Library      string  `json:"library"`
	Staging      string  `json:"staging"`
	Symbol       string  `json:"symbol"`
	DebugSuffix  string  `json:"debugSuffix"`
	PollInterval float64 `json:"pollInterval"` // seconds
}

type AudioConfig struct {
	Enabled            bool    `json:"enabled"`
	Volume             float64 `json:"volume"` // beep effects.Volume, base 2; 0 = unchanged
	KeyFrequency       float64 `json:"keyFrequency"`
	TypoFrequency      float64 `json:"typoFrequency"`
	BackspaceFrequency float64 `json:"backspaceFrequency"`
	ClickMillis        int     `json:"clickMillis"`
}

type TerminalConfig struct {
	FrameMillis int `json:"frameMillis"`
	HoldMillis  int `json:"holdMillis"` // how long a key counts as held after its last repeat
}

// TypingConfig is the scene content in typing.yaml
type TypingConfig struct {
	Text              string  `yaml:"text"`
	CharsPerSecond    float64 `yaml:"charsPerSecond"`
	SkipMode          string  `yaml:"skipMode"`
	FastForwardFactor float64 `yaml:"fastForwardFactor"`
	TypoChance        int     `yaml:"typoChance"`
	MaxTypoDistance   int     `yaml:"maxTypoDistance"`
	JitterScale       float64 `yaml:"jitterScale"`
	TypoPause         float64 `yaml:"typoPause"`
	FixPause          float64 `yaml:"fixPause"`
}
