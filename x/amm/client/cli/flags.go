package cli

const (
	// flagLpURL overrides the metadata URL stamped on the LP claim token.
	flagLpURL = "lp-url"
)
