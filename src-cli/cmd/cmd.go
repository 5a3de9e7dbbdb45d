package cmd

const (
	AppName    = "icsfilter"
	AppVersion = "0.1.0"
)
