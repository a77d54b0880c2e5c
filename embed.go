// Package leavebot holds assets embedded into the leavebot binary.
package leavebot

import "embed"

// Migrations contains goose SQL migrations for the optional postgres storage.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Web contains the static leave request form served under /liff/.
//
//go:embed web
var Web embed.FS
