package catalog

// EnrichChunks propagates canonical document-level metadata onto every chunk
// derived from a just-cataloged source. The chunk's own location (source,
// page, index) is preserved; everything else is replaced wholesale. Chunks
// whose source has no staged record, because it was skipped as a duplicate
// or its catalog creation failed, keep their minimal original metadata.
func EnrichChunks(chunks []ChunkRecord, records []Record) []ChunkRecord {
	bySource := make(map[string]Record, len(records))
	for _, r := range records {
		bySource[r.Source] = r
	}

	out := make([]ChunkRecord, len(chunks))
	for i, c := range chunks {
		if r, ok := bySource[c.Source]; ok {
			c.Meta = r.Meta
		}
		out[i] = c
	}
	return out
}
