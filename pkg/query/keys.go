package query

// Key prefixes shared by the read paths and the mutations that invalidate them.
const (
	Users         = "users"
	Projects      = "projects"
	Artworks      = "artworks"
	Contacts      = "contacts"
	Media         = "media"
	Categories    = "categories"
	Tasks         = "tasks"
	History       = "history"
	RightsHolders = "rights-holders"
	RightsMedia   = "rights-media"
)

// Prefixes lists every top-level prefix. Invalidating all of them empties
// the cache.
func Prefixes() []string {
	return []string{Users, Projects, Artworks, Contacts, Media, Categories, Tasks, History, RightsHolders, RightsMedia}
}

// RightsByArtworkKey is the key of the rights holders listed for an artwork.
func RightsByArtworkKey(artworkID string) string {
	return Key(RightsHolders, "artwork", artworkID)
}

// RightsHolderInvalidation lists the prefixes dropped when a rights holder of
// artworkID changes.
func RightsHolderInvalidation(holderID, artworkID string) []string {
	keys := []string{
		RightsHolders,
		Key(Artworks, artworkID),
		Projects,
	}
	if holderID != "" {
		keys = append(keys, Key(RightsHolders, holderID))
	}
	return keys
}
