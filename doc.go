// Package auth provides stateless token authentication and single-owner
// authorization for the blog platform.
//
// Identity tokens are HMAC-signed JWTs carrying the subject (email), a
// user id, and issued-at / expires-at claims. Verification is a pure
// function of the token, the injected clock, and the process-wide
// signing key: no session store, no revocation list. The fiber
// middleware resolves a bearer token into request-scoped claims, and
// AuthorizeMutation enforces that only a resource's owner may change it.
package auth
