package config

// Input limits enforced by service-layer validation.
const (
	MaxFolderNameLength   = 120
	MaxModuleNameLength   = 120
	MaxActivityTypeLength = 60
	MaxDescriptionLength  = 2000
	MaxNotesLength        = 2000

	// MaxEntryHours caps a single entry; longer blocks should be split.
	MaxEntryHours = 24.0
)
