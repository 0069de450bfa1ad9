package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const minPasswordLength = 12

// Prints a bcrypt hash for ADMIN_PASSWORD_HASH
func main() {
	fmt.Println("=== Operator Password ===")
	fmt.Println()

	// Get password securely
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println() // New line after password input

	fmt.Print("Confirm password: ")
	confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	fmt.Println()

	if string(passwordBytes) != string(confirmBytes) {
		log.Fatal("Passwords do not match")
	}
	if len(passwordBytes) < minPasswordLength {
		log.Fatalf("Password must be at least %d characters long", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println()
	fmt.Println("Add this line to your .env file:")
	fmt.Fprintf(os.Stdout, "ADMIN_PASSWORD_HASH='%s'\n", hash)
}
