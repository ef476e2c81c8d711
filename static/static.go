// Package static embeds the HTML pages served at / and /test.
package static

import "embed"

//go:embed index.html test.html
var Files embed.FS
