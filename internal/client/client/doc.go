// Package client contains the data sources the client stores talk to.
//
// # Overview
//
// The package provides:
//  1. The consumed contracts AuthDataSource and CatalogDataSource, combined
//     with Ping/Close into Client.
//  2. A gRPC implementation (GRPCClient) that keeps the access token issued by
//     Signup/Login, injects it through an interceptor and maps gRPC status
//     codes to sentinel errors.
//  3. An in-process mock API (MockClient) with simulated latency, seeded with
//     the demo catalog, for running the CLI without a server.
//
// # Error Handling
//
// Remote conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrAlreadyExists,
// ErrInvalidArgument.
//
// Concurrency & Contexts
//
// Both implementations are safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
