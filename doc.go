/*
Package mipmap renders the fallback launcher icons of an Android app:
a white clock face with two hands on the app's purple background, drawn
at every density bucket from mdpi to xxxhdpi and written as both
ic_launcher and ic_launcher_round into the matching mipmap-<density>
resource directories.

The package provides a command line interface which writes the whole set:

	$ mipmap -out app/src/main/res

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/buzztimer/mipmap"
	)

	func main() {
		gen := mipmap.NewGenerator("app/src/main/res")
		if _, err := gen.Generate(); err != nil {
			log.Fatalf("Error generating icons: %v", err)
		}
	}

A single icon can be rendered with Render, which returns a Canvas that can be
handed to any image encoder.
*/
package mipmap
