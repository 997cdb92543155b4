// Package api handles incoming HTTP requests, request validation and error
// translation. One generic resource handler serves every entity kind; the
// login, index and health handlers cover the rest of the surface. Responses
// are written through the shared package so every endpoint honours the
// format query parameter.
package api
