/*
Package hobjview/main provides an interactive command line tool for
inspecting higher object sources. It loads a source, reports the objects
defined therein and displays parse trees, tokens and meshes.

Usage:

    hobjview [-trace Debug|Info|Error] [-init commands] [-strict] [file]

Commands:

    load <file>     read a higher object source
    tree            show the parse tree of the current source
    objects         list the objects of the current source
    show <name>     show vertices and facets of an object
    mesh <name>     show the mesh of an object
    tokens          list the tokens of the current source
    syntax          print the syntax of higher object sources
    quit            leave the tool

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cube4d.hobj'
func tracer() tracing.Trace {
	return tracing.Select("cube4d.hobj")
}
