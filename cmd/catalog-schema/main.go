// Command catalog-schema writes the JSON schema of the fact catalog document
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/health-snake/catalog"
)

func main() {
	out := flag.String("o", "catalog.schema.json", "Output path, - for stdout")
	flag.Parse()

	data, err := catalog.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}

	if *out == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
