package config

// DefaultExcludes are glob patterns excluded from indexing by default.
var DefaultExcludes = []string{
	".git/**",
	".plansearch/**",
	"**/*.tmp",
	"**/*.bak",
	"**/Thumbs.db",
	"**/.DS_Store",
}

// DefaultIncludes limits traversal to the document types the extractor
// understands.
var DefaultIncludes = []string{
	"**/*.pdf",
	"**/*.txt",
	"**/*.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o-mini",
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		DocsDir:           "documents",
		DataDir:           ".plansearch",
		DefaultProject:    "General",
		ChunkSize:         500,
		ChunkOverlap:      20,
		MaxFileMB:         50,
		MaxPages:          200,
		SectionChars:      6000,
		SearchLimit:       10,
		BroadSearchLimit:  25,
		Include:           DefaultIncludes,
		Exclude:           DefaultExcludes,
	}
}
