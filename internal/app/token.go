package app

import (
	"fmt"

	"github.com/google/uuid"
)

// IssueToken signs an access token for an operator without starting the
// server. Only configuration and the signer are initialized.
func IssueToken(userID, userName string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("parse user id: %w", err)
	}

	a := &App{}
	a.initConfig()
	defer func() { _ = a.config.Close() }()

	a.initLibraries()
	a.initJWT()

	return a.jwt.Generate(id, userName)
}
