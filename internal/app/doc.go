// Package app contains the core demo logic. It defines the App struct, its
// configuration, and the linear run sequence that ends either in a success
// line or in an intentional fault, decoupled from the CLI entrypoint.
package app
