package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tokentools/tokendiff/pkg/compare"
	"github.com/tokentools/tokendiff/pkg/tokens"
)

func main() {
	// Usage: go run main.go -project project.json -reference reference.json

	projectFlag := flag.String("project", "", "Path to the project token document")
	referenceFlag := flag.String("reference", "", "Path to the reference token document")

	// Parse the command-line flags
	flag.Parse()

	if *projectFlag == "" {
		fmt.Println("Project path is required. Please provide it using the -project flag.")
		return
	}

	if *referenceFlag == "" {
		fmt.Println("Reference path is required. Please provide it using the -reference flag.")
		return
	}

	project := mustLoad(*projectFlag)
	reference := mustLoad(*referenceFlag)

	// Zero options use the default thresholds and weights
	rep := compare.Run(project, reference, compare.Options{})

	fmt.Println("Overall:", rep.Overall)
	fmt.Println("Colors:", rep.Colors.Score, rep.Colors.Status)
	fmt.Println("Typography:", rep.Typography.Score, rep.Typography.Status)
	fmt.Println("Spacing:", rep.Spacing.Score, rep.Spacing.Status)
	fmt.Println("Border radius:", rep.BorderRadius.Score, rep.BorderRadius.Status)

	for _, rec := range rep.Recommendations {
		fmt.Println(rec.Priority, rec.Category+":", rec.Message)
	}
}

func mustLoad(path string) *tokens.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	doc, err := tokens.Parse(data)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return doc
}
