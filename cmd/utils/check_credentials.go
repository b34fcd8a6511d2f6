package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	vision "google.golang.org/api/vision/v1"
)

// Verifies that a service account key file can mint a Vision API token.
// Usage: check_credentials <key-file.json>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: check_credentials <service-account-key.json>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read key file: %v", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, vision.CloudVisionScope)
	if err != nil {
		log.Fatalf("failed to parse service account key: %v", err)
	}

	fmt.Printf("Service account: %s\n", jwtConfig.Email)

	token, err := jwtConfig.TokenSource(context.Background()).Token()
	if err != nil {
		log.Fatalf("failed to obtain token: %v", err)
	}

	fmt.Printf("Token obtained, expires %s\n", token.Expiry)
}
