// Package services contains stateless domain services for the partner
// console.
//
// OrderAccessPolicy decides who may claim an order and who may mutate its
// status thereafter; AccessGuard gates navigation to authenticated-only
// views. Both are pure: they hold no state, perform no I/O, and return
// decisions as values. The upstream retail API remains the final authority
// on every mutation; these services enforce the same rules defensively so
// known-illegal actions never cost a network round trip.
package services
