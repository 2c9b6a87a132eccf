// Package order provides the domain model for retail orders as seen by a
// delivery partner. It mirrors the upstream retail API's order shape while
// enforcing local validation so malformed payloads never enter the domain.
//
// The package includes:
//   - Order: the aggregate restored from upstream responses
//   - Status: the closed lifecycle set (no client-side ordering constraints)
//   - Item, Address, Charges, Payment, PartnerSummary: immutable components
//
// Key business rules:
//   - A nil assigned partner id means the order is unclaimed
//   - Claiming and status mutation authorization is decided by
//     services.OrderAccessPolicy; the upstream remains the final authority
//   - Cached orders are replaced wholesale from upstream responses, never
//     merged field by field
package order
