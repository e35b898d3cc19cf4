// Package iiko provides types, interfaces, and error classification for
// working with the iiko Cloud (Transport) API.
//
// # Overview
//
// The iiko package defines the domain types (Organization, ExternalMenu,
// Menu and its nested categories, items, sizes, and prices) and the
// interfaces for the session-aware client (SessionClient, ResourceClients).
// A concrete implementation is provided by the iikoclient package, which
// wires configuration, transport, and session state. Most consumers should
// import iikoclient to construct a client and then interact with the
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/commonwealth-codeunion/iiko-api/pkg/iikoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := iikoclient.NewWithAPILogin("your-api-login")
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err := cli.Authenticate(ctx); err != nil { log.Fatal(err) }
//
//	  orgs, err := cli.Organizations().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = orgs
//	}
//
// # Error classification
//
// Every failed call surfaces as exactly one of four kinds: the local guard
// sentinel ErrNotAuthenticated (raised before any network call when the
// session was never authenticated), *AuthenticationError (server 401),
// *RateLimitError (server 429, with advisory Retry-After metadata), or
// *APIError (any other non-2xx status or a transport failure). Branch with
// errors.Is / errors.As, or the IsAuthenticationError / IsRateLimitError
// helpers:
//
//	orgs, err := cli.Organizations().List(ctx, nil)
//	if iiko.IsRateLimitError(err) {
//	  if wait, ok := iiko.RetryAfterSeconds(err); ok {
//	    log.Printf("rate limited, server suggests waiting %ds", wait)
//	  }
//	}
//
// The library only classifies; it never retries or re-authenticates on its
// own.
package iiko
