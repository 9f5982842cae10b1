package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/sugarloafbakes/orderpipe/gen/ent",
			Schema:  "github.com/sugarloafbakes/orderpipe/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
