package config

// Config represents the structure of config.yml used by the tool.
// Only the fields currently needed by commands are modeled.
type Config struct {
	Sheets struct {
		// APIKeyEnv names the env var holding a Sheets API key (keyed access).
		APIKeyEnv string `yaml:"api_key_env"`
		// ServiceAccountFile points to a service account JSON key; when set it
		// takes precedence over the API key.
		ServiceAccountFile string `yaml:"service_account_file"`
	} `yaml:"sheets"`

	DataDir  string    `yaml:"data_dir"`
	Sections []Section `yaml:"sections"`
}

// Section is one department tab of the production workbook.
type Section struct {
	Key     string `yaml:"key"`   // e.g. "imd"
	Label   string `yaml:"label"` // e.g. "IMD"
	SheetID string `yaml:"sheet_id"`
	Range   string `yaml:"range"` // e.g. "IMD!A:H"
	Exclude bool   `yaml:"exclude"`
}

// SectionByKey finds a section by its key.
func (c *Config) SectionByKey(key string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
