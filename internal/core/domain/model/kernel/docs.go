// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identifier for objects the console itself creates (sessions)
//   - RemoteID: opaque identifier assigned by the upstream retail API
//     (orders, partners)
//
// Both types are immutable value objects whose zero values are invalid and
// must be created through their constructor functions.
package kernel
