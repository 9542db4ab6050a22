// Package common contains constants and sentinel errors shared by the
// client and the course API server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultPopularLimit is how many popular courses the home page shows.
const DefaultPopularLimit = 8
