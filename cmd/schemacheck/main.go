package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diegotc86/firecms"
	"github.com/diegotc86/firecms/schema"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	fileFlag    = flag.String("f", "schemas.yaml", "Schema definition file to check")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := firecms.GetVersionInfo()
		fmt.Printf("FireCMS schemacheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// A .env is optional; environment variables win either way.
	_ = godotenv.Load()

	schemas, err := schema.Load(*fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schemacheck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d schema(s) OK\n", *fileFlag, len(schemas))
	for _, s := range schemas {
		fmt.Printf("  - %s (id: %s, %d properties)\n", s.Name, s.ID.Mode, len(s.Properties))
		if s.ID.Mode == schema.IDEnumerated {
			fmt.Printf("    allowed ids: %v\n", s.ID.Allowed)
		}
	}
}
