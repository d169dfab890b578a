// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort              = "3000"
	DefaultDBDriver          = "sqlite"
	DefaultDBPath            = "weatherrecap.db"
	DefaultDBPort            = "3306"
	DefaultMaxConns          = 10
	DefaultOpenAIModel       = "gpt-3.5-turbo"
	DefaultLLMTimeout        = 2 * time.Minute
	DefaultLLMMinInterval    = 0
	DefaultRenderDir         = "../remotion/weather"
	DefaultRenderCommand     = "npm run render-video"
	DefaultRenderOutput      = "out/video.mp4"
	DefaultRenderTimeout     = 10 * time.Minute
	DefaultRenderConcurrency = 1
	DefaultWeatherDataDir    = "weather-data"
	DefaultCORSOrigins       = "*"
	DefaultShutdownTimeout   = 5 * time.Second
)

// Database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Composition layout used by the rendering frontend
const (
	CompositionID      = "MainComposition"
	CompositionFPS     = 30
	CompositionWidth   = 1920
	CompositionHeight  = 1080
	DefaultIntroFrames = 150
	DefaultChartFrames = 300
)

// Render output
const (
	DefaultVideoFormat   = "mp4"
	VideoTitleTemplate   = "Video for Wizard %d"
	RenderOutputSubdir   = "out"
	StaticVideosRoute    = "/videos/out"
	WeatherDataExtension = ".json"
)

// Scene types
const (
	SceneTypeIntro = "intro"
	SceneTypeChart = "chart"
)

// Statuses
const (
	WizardStatusPending    = "pending"
	WeatherQueryStatusDone = "completed"
	VideoStatusCompleted   = "completed"
)

// Limits
const (
	MaxRenderOutputBytes = 64 * 1024
	MaxRequestBodyBytes  = 10 << 20
)

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)
