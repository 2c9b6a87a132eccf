// Package session provides the session aggregate: the authenticated partner
// identity plus the credential material valid for a bounded time window.
//
// A session holds two independent credentials: a short-lived access token
// (about a day) and a longer-lived refresh token (about two weeks). Both are
// opaque strings; validity is tracked by expiry windows recorded at issue
// time. The identity invariant is strict: a partner is attached iff the
// session is Authenticated, and invalidation clears identity and credentials
// together.
package session
