package model

// RepositoryNode is a single entry of user.repositories.nodes
type RepositoryNode struct {
	Name       string        `json:"name"`
	IsArchived bool          `json:"isArchived"` // missing in payload means not archived
	Languages  LanguageEdges `json:"languages"`
}

type LanguageEdges struct {
	Edges []LanguageEdge `json:"edges"`
}

// LanguageEdge is one (language, size in bytes) measurement for a repository
type LanguageEdge struct {
	Size int64        `json:"size"`
	Node LanguageNode `json:"node"`
}

type LanguageNode struct {
	Name  string  `json:"name"`
	Color *string `json:"color"` // github returns null for some languages
}

type Language struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
	Size  int64   `json:"size"`
}

// LanguageTotals is keyed by the language name (case sensitive)
type LanguageTotals map[string]Language

type RankedLanguage struct {
	Name    string  `json:"name"`
	Color   *string `json:"color"`
	Size    int64   `json:"size"`
	Percent float64 `json:"percent"`
}

type TopLanguages struct {
	Username  string           `json:"username"`
	TotalSize int64            `json:"totalSize"`
	Languages []RankedLanguage `json:"languages"`
}

type CompareEntry struct {
	TopLanguages
	Error *APIError `json:"error,omitempty"`
}
