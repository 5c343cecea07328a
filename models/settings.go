package models

// Settings is the subset of user configuration the enhancement core reads.
// It is treated as read-only input; a change triggers a full pipeline re-run.
type Settings struct {
	RearrangerEnabled   bool     `yaml:"rearranger_enabled"`
	PriorityKeys        []string `yaml:"priority_keys"`
	StandardOrder       []string `yaml:"standard_order"`
	NewJobDaysThreshold int      `yaml:"new_job_days_threshold"`
}

// DefaultSettings returns the built-in configuration used when the settings
// store is absent or unreadable.
func DefaultSettings() Settings {
	return Settings{
		RearrangerEnabled: true,
		PriorityKeys: []string{
			KeyDuration,
			KeyLocation,
			KeyCompensation,
			KeyDeadline,
			KeyMethod,
		},
		StandardOrder: []string{
			KeyTitle, KeyCompany, KeyDivision, KeyOpenings, KeyCategory,
			KeyLevel, KeyDuration, KeyRegion, KeyCity, KeyProvince,
			KeyCountry, KeyAddress, KeyPostal, KeyCompensation, KeyDeadline,
			KeyMethod, KeyExternalURL, KeyDescription,
		},
		NewJobDaysThreshold: 14,
	}
}

// PriorityEnabled reports whether key is in the configured priority list.
func (s Settings) PriorityEnabled(key string) bool {
	for _, k := range s.PriorityKeys {
		if k == key {
			return true
		}
	}
	return false
}
