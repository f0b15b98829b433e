package core

import (
	"fmt"
	"time"
)

// ConfigInput is the yaml representation of the runtime configuration
type ConfigInput struct {
	SiteURL        string            `yaml:"siteURL"`
	Admins         []string          `yaml:"admins"`
	SessionSecret  string            `yaml:"sessionSecret"`
	InstagramToken string            `yaml:"instagramToken"`
	CaptchaSecret  string            `yaml:"captchaSecret"`
	UploadBucket   string            `yaml:"uploadBucket"`
	UploadBaseURL  string            `yaml:"uploadBaseURL"`
	Doors          []DoorWindowInput `yaml:"doors"`
}

type DoorWindowInput struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DoorWindow is a half open interval [Start, End)
type DoorWindow struct {
	Start time.Time
	End   time.Time
}

// Config is the runtime configuration shared by services
type Config struct {
	SiteURL        string
	Admins         []string
	SessionSecret  string
	InstagramToken string
	CaptchaSecret  string
	UploadBucket   string
	UploadBaseURL  string
	Doors          []DoorWindow
}

var campTimezone = time.FixedZone("JST", 9*60*60)

// DefaultDoorWindows returns six contiguous daily windows of the camp week
func DefaultDoorWindows() []DoorWindow {
	first := time.Date(2026, time.August, 3, 9, 0, 0, 0, campTimezone)
	windows := make([]DoorWindow, DoorCount)
	for i := range windows {
		start := first.AddDate(0, 0, i)
		windows[i] = DoorWindow{
			Start: start,
			End:   start.AddDate(0, 0, 1),
		}
	}
	return windows
}

// ParseDoorWindows parses RFC3339 windows. windows must be chronological and must not overlap.
func ParseDoorWindows(inputs []DoorWindowInput) ([]DoorWindow, error) {
	if len(inputs) == 0 {
		return DefaultDoorWindows(), nil
	}

	if len(inputs) != DoorCount {
		return nil, fmt.Errorf("expected %d door windows, got %d", DoorCount, len(inputs))
	}

	windows := make([]DoorWindow, len(inputs))
	for i, input := range inputs {
		start, err := time.Parse(time.RFC3339, input.Start)
		if err != nil {
			return nil, fmt.Errorf("door %d: invalid start: %w", i, err)
		}
		end, err := time.Parse(time.RFC3339, input.End)
		if err != nil {
			return nil, fmt.Errorf("door %d: invalid end: %w", i, err)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("door %d: end must be after start", i)
		}
		if i > 0 && start.Before(windows[i-1].End) {
			return nil, fmt.Errorf("door %d: overlaps with door %d", i, i-1)
		}
		windows[i] = DoorWindow{Start: start, End: end}
	}

	return windows, nil
}

func SetupConfig(base ConfigInput) Config {

	doors, err := ParseDoorWindows(base.Doors)
	if err != nil {
		panic(err)
	}

	return Config{
		SiteURL:        base.SiteURL,
		Admins:         base.Admins,
		SessionSecret:  base.SessionSecret,
		InstagramToken: base.InstagramToken,
		CaptchaSecret:  base.CaptchaSecret,
		UploadBucket:   base.UploadBucket,
		UploadBaseURL:  base.UploadBaseURL,
		Doors:          doors,
	}
}
