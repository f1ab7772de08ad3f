package assets

import "embed"

// FontsFS embeds the TTF fonts used by the PDF exporter.
//
//go:embed fonts/*.ttf
var FontsFS embed.FS
