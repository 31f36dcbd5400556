package static

import "embed"

// FS contains the stylesheet and the progressive-enhancement script of the
// landing page.
//
//go:embed css/*.css js/*.js
var FS embed.FS
