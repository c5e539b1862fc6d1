// Package api embeds the OpenAPI document of the HTTP interface.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server -package servers -o ../internal/generated/servers/server.gen.go openapi.yml

//go:embed openapi.yml
var OpenAPI []byte
