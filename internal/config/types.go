package config

// ProviderType identifies a model-serving backend.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level plansearch configuration, corresponding to
// .plansearch.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`

	// DocsDir is the root of the construction-document tree to index.
	DocsDir string `yaml:"docs_dir" koanf:"docs_dir"`
	// DataDir holds the persisted vector index and working files.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// DefaultProject is the fallback project name when the storage path
	// carries no projects/<name> segment.
	DefaultProject string `yaml:"default_project" koanf:"default_project"`

	ChunkSize    int `yaml:"chunk_size" koanf:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap" koanf:"chunk_overlap"`

	// MaxFileMB and MaxPages flag oversized documents for split handling.
	MaxFileMB int `yaml:"max_file_mb" koanf:"max_file_mb"`
	MaxPages  int `yaml:"max_pages" koanf:"max_pages"`

	// SectionChars caps the excerpt sent for AI metadata extraction.
	SectionChars int `yaml:"section_chars" koanf:"section_chars"`

	SearchLimit      int `yaml:"search_limit" koanf:"search_limit"`
	BroadSearchLimit int `yaml:"broad_search_limit" koanf:"broad_search_limit"`

	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
