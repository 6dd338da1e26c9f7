/*
Package circles renders the Circles application icon set: a rounded-square
badge with a circular emblem and a checkmark glyph, generated at every
width/height/scale combination the asset catalog requires and validated
against the packaging rules afterwards.

The package provides a command line interface for generating the full icon set.
To check the supported commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		circles "github.com/geraldsadya/Circles"
	)

	func main() {
		g := &circles.Generator{
			Palette: circles.DefaultPalette(),
			OutDir:  "AppIcon.appiconset",
		}

		if _, err := g.Generate(); err != nil {
			fmt.Printf("Error generating the icon set: %s", err.Error())
		}
	}
*/
package circles
