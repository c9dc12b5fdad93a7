package db

import "embed"

//go:embed schema/*.sql
var Schema embed.FS

//go:embed seed/*.sql
var Seed embed.FS
