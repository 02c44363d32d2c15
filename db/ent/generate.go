// Command generate produces the Ent client for the cardvault schemas.
// Run from the repository root; output lands in gen/ent, which is not
// committed.
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
			Package: "github.com/cardvault/cardvault/gen/ent",
			Schema:  "github.com/cardvault/cardvault/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
