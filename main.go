package main

import "github.com/notargets/facetsurf/cmd"

func main() {
	cmd.Execute()
}
