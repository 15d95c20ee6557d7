package config

import "time"

type ServerModeType string

const (
	ServerModeProd ServerModeType = "prod"
	ServerModeDev  ServerModeType = "dev"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Agent VTS TTS
type Configuration struct {
	Server Server `debugmap:"visible"`
	Agent  Agent  `debugmap:"visible"`
	VTS    VTS    `debugmap:"visible"`
	TTS    TTS    `debugmap:"visible"`

	// Log
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Server struct {
	HTTPPort      int    `debugmap:"visible" default:"5000"`
	ServerMode    string `debugmap:"visible" default:"dev"`
	StaticsFolder string `debugmap:"visible"`
}

type Agent struct {
	DataFolder string `debugmap:"visible"`
}

// VTS holds the VTube Studio plugin settings.
type VTS struct {
	Host            string        `debugmap:"visible" default:"127.0.0.1"`
	Port            int           `debugmap:"visible" default:"8001"`
	PluginName      string        `debugmap:"visible" default:"Yuuna-Project"`
	PluginDeveloper string        `debugmap:"visible" default:"Nonx2"`
	Timeout         time.Duration `debugmap:"visible" default:"5s"`
}

// TTS holds the VOICEVOX engine settings.
type TTS struct {
	URL            string        `debugmap:"visible" default:"http://localhost:50021"`
	DefaultSpeaker int           `debugmap:"visible" default:"2"`
	RequestTimeout time.Duration `debugmap:"visible" default:"60s"`
}
