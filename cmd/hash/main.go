package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates a password hash for seeding the users table.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/hash <password>")
		return
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	fmt.Println(string(hash))
}
