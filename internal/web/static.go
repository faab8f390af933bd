package web

import (
	"embed"
)

// staticFiles holds the embedded calculator page.
//
//go:embed static/*
var staticFiles embed.FS
