// Package schemas holds the JSON Schemas for records served by the backend API.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
