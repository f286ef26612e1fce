package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shandysiswandi/campus/internal/app"
)

// @title           Campus API
// @version         1.0
// @description     Campus manages users, students, contacts and the links between students and their contacts.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	tokenFor := flag.String("issue-token", "", "print an access token for the given user id and exit")
	tokenName := flag.String("issue-token-name", "operator", "user name embedded in the issued token")
	flag.Parse()

	if *tokenFor != "" {
		token, err := app.IssueToken(*tokenFor, *tokenName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
