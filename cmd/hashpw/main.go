// Command hashpw generates the ADMIN_PASSWORD_HASH value for a password.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
