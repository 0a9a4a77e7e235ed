// Package models defines the core domain models for the gift exchange.
//
// # Roster Models
//
//   - Person: one participant, tagged with the family they belong to
//   - Edge: one "giver gives to receiver" pair
//
// People are built once by the roster loader and never mutated afterwards.
// Assignments are produced separately and reference people by ID only.
//
// # Persisted Models
//
//   - Event: a named roster owned by an organizer
//   - Draw: one committed assignment for an event
//
// # Design Principles
//
// 1. **Immutable inputs**: the assignment engine reads people and returns a new result
// 2. **Avoid circular references**: use ID strings instead of pointers for relationships
// 3. **Plain data**: formatting belongs to the report package, not to the models
package models
