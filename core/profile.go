package core

type BuildInfo struct {
	BuildTime    string `yaml:"BuildTime" json:"BuildTime"`
	BuildMachine string `yaml:"BuildMachine" json:"BuildMachine"`
	GoVersion    string `yaml:"GoVersion" json:"GoVersion"`
}

// Profile is the public information about the camp
type Profile struct {
	Name         string `yaml:"name" json:"name"`
	Theme        string `yaml:"theme" json:"theme"`
	Venue        string `yaml:"venue" json:"venue"`
	StartDate    string `yaml:"startDate" json:"startDate"`
	EndDate      string `yaml:"endDate" json:"endDate"`
	Organizer    string `yaml:"organizer" json:"organizer"`
	ContactEmail string `yaml:"contactEmail" json:"contactEmail"`
	Instagram    string `yaml:"instagram" json:"instagram"`

	// internal generated
	Version   string    `yaml:"version" json:"version"`
	BuildInfo BuildInfo `yaml:"buildInfo" json:"buildInfo"`
	SiteKey   string    `yaml:"captchaSiteKey" json:"captchaSiteKey"`
}
