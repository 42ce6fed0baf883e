package project

const (
	Name    = "foldtodef"
	Version = "0.1.0"
)
