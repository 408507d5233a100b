package annotation

// Config controls comment rendering and what happens to comments already in
// the target document.
type Config struct {
	IncludeTitle       bool
	IncludeDescription bool
	// MaxLineWidth wraps descriptions at this many characters. 0 disables
	// wrapping.
	MaxLineWidth int
	// PreserveExisting keeps the comments directly above an annotated key and
	// puts the new block above them. When false those comments are replaced.
	PreserveExisting bool
	IncludeDefault   bool
}

func DefaultConfig() Config {
	return Config{
		IncludeTitle:       true,
		IncludeDescription: true,
		MaxLineWidth:       80,
		PreserveExisting:   true,
	}
}

func TitlesOnly() Config {
	cfg := DefaultConfig()
	cfg.IncludeDescription = false
	return cfg
}

func DescriptionsOnly() Config {
	cfg := DefaultConfig()
	cfg.IncludeTitle = false
	return cfg
}
