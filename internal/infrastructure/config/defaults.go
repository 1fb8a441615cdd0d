package config

// LoremTwoParagraphs is the text typed when no typing.yaml is available
const LoremTwoParagraphs = "Lorem ipsum odor amet, consectetuer adipiscing elit. Per nunc accumsan nostra aliquam neque hendrerit sem aliquet. " +
	"Leo pretium vel molestie dis donec habitasse. Nunc velit adipiscing ante turpis sollicitudin justo vitae erat? " +
	"Nam finibus libero velit auctor inceptos. Egestas gravida ultrices erat aenean, inceptos justo. " +
	"Laoreet facilisis velit lectus vehicula facilisis etiam phasellus facilisis. Finibus tristique suspendisse convallis, nisl fermentum interdum inceptos. " +
	"Massa ultricies sit dis magna curabitur ultrices conubia nunc sed. Duis venenatis fames nec sapien luctus pellentesque, urna tristique netus."

// DefaultHostConfig returns the values used for keys missing from host.json
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			FontScale:    1.5,
			Framerate:    60,
			Title:        "Typing Text",
		},
		Reload: ReloadConfig{
			Library:      "bin/typingtext.so",
			Staging:      "bin/staging/typingtext.so",
			Symbol:       "SceneFunctions",
			DebugSuffix:  ".debug",
			PollInterval: 1,
		},
		Audio: AudioConfig{
			Enabled:            true,
			Volume:             -2,
			KeyFrequency:       1200,
			TypoFrequency:      1000,
			BackspaceFrequency: 600,
			ClickMillis:        12,
		},
		Terminal: TerminalConfig{
			FrameMillis: 16,
			HoldMillis:  550,
		},
	}
}

// DefaultTypingConfig returns the scene content used when typing.yaml is missing
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		Text:              LoremTwoParagraphs,
		CharsPerSecond:    20,
		SkipMode:          "jump",
		FastForwardFactor: 5,
		TypoChance:        30,
		MaxTypoDistance:   5,
		JitterScale:       0.6,
		TypoPause:         3,
		FixPause:          2,
	}
}
