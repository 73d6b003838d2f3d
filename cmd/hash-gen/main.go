package main

import (
	"fmt"
	"log"
	"os"

	"portfolio.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

func resolvePassword(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if env := os.Getenv("ADMIN_PASSWORD"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("usage: hash-gen <password> (or set ADMIN_PASSWORD)")
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password, err := resolvePassword(os.Args[1:])
	if err != nil {
		fatalfFn("%v", err)
		return
	}

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}

	printfFn("ADMIN_PASSWORD_HASH=%s\n", hash)
}
