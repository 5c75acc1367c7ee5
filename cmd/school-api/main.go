// Package main is the entry point for the school administration API.
package main

import (
	"fmt"
	"os"

	_ "github.com/schooldesk/school-api/docs"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

// @title           School Admin API
// @version         1.0
// @description     Registration, authentication, students, staff and messaging for schools.
// @BasePath        /
// @schemes         http https
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT token.
func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
