package core

import "golang.org/x/text/language"

// File names
const (
	// TableName is the command table filename
	TableName = "cmdtarget.yml"
	// SettingsName is the optional CLI settings file (without extension)
	SettingsName = "cmdtarget.config"
)

// Verbose controls whether dispatch calls are logged
var Verbose = false

// Locale is used when the table target parses unit values from text
var Locale = language.Und

// SampleGroup is the custom command group of the starter table.
var SampleGroup = mustGroup("5c1b8a4e-7f0d-4c39-9b0e-3f6a2d1c8e57")
