// huecount - whitelist-based dominant colour extraction
//
// huecount samples an image on a fixed grid, classifies every opaque sample
// against a curated reference palette and reports the palette ranked by hit
// frequency.
package main

import (
	"github.com/huecount/huecount/internal/cli"
)

func main() {
	cli.Execute()
}
