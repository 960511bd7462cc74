// Package model defines the records of the artrights database.
//
// Every record embeds Base (id, created_at, created_by) and exposes its
// columns by name through Attr, which the in-memory store and the table
// package use for filtering and sorting. Partial updates are expressed as
// Patch values whose nil fields are left untouched.
//
// # Core Models
//
//   - User: an account allowed to edit the catalogue
//   - Category: a label for projects, artworks or contacts
//   - Project: an exhibition or publication with a budget
//   - Artwork: a catalogued work, optionally attached to a project
//   - Contact: an institution or person holding rights
//   - Media: a licensing channel such as print or web
//   - RightsHolder: the price agreed with a contact for an artwork
//   - RightsMedia: one media licensed by a rights holder
//   - Task: a follow-up item attached to an artwork
//   - ArtworkHistory: one field change of an artwork
//
// # Views
//
// The *View types join a record with the records it references, for
// example RightsHolderView carries the contact and the media it licenses.
// Unresolved categories are shown as UnknownCategoryName.
package model
