// Command kopt improves TSP tours stored as YAML documents.
//
//	kopt optimize -i tour.yaml -o best.yaml --timeout 5s --seed 7
//	kopt bench --points 200 --runs 10 --timeout 500ms
package main

import "github.com/katalvlaran/kopt/internal/cli"

func main() {
	cli.Execute()
}
