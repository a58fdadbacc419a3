// Package web embeds the UI assets so the binary is self-contained.
package web

import "embed"

// TemplatesFS holds the HTML templates for server-side rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds static assets (css/js).
//
//go:embed static/*
var StaticFS embed.FS
