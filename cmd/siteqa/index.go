package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the index command: split a site's items into chunks, embed
// them, and persist the vectors for retrieval. Re-indexing replaces any
// previously stored chunks.
func (c *IndexCmd) Run(deps *Dependencies) error {
	site, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
	if err != nil {
		if siteqa.ErrorCode(err) == siteqa.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'siteqa list' to see available sites.\n", c.Name)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	items, err := deps.Items.FindItems(deps.Ctx, siteqa.ItemFilter{SiteID: &site.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q has no items. Run 'siteqa scrape' first.\n", c.Name)
		return siteqa.Errorf(siteqa.ENOTFOUND, "site %q has no items", c.Name)
	}

	chunks := BuildChunks(items, c.ChunkSize, c.ChunkOverlap)
	if len(chunks) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q has no indexable content\n", c.Name)
		return siteqa.Errorf(siteqa.ENOTFOUND, "site %q has no indexable content", c.Name)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}
	vectors, err := deps.Embedder.EmbedTexts(deps.Ctx, texts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error embedding: %v\n", err)
		return err
	}
	if len(vectors) != len(chunks) {
		err := siteqa.Errorf(siteqa.EINTERNAL, "got %d embeddings for %d chunks", len(vectors), len(chunks))
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}
	for i, chunk := range chunks {
		chunk.Embedding = vectors[i]
	}

	if err := deps.Chunks.DeleteChunksBySite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}
	if err := deps.Chunks.CreateChunks(deps.Ctx, chunks); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d chunks from %d items for %q\n", len(chunks), len(items), c.Name)
	return nil
}

// BuildChunks splits each item's markdown into chunks carrying the source
// metadata needed for citations. Chunk positions restart per item.
func BuildChunks(items []*siteqa.Item, size, overlap int) []*siteqa.Chunk {
	var chunks []*siteqa.Chunk
	for _, item := range items {
		for i, text := range siteqa.SplitText(item.Content, size, overlap) {
			chunks = append(chunks, &siteqa.Chunk{
				ItemID:    item.ID,
				SiteID:    item.SiteID,
				Content:   text,
				Position:  i,
				Title:     item.Title,
				SourceURL: item.SourceURL,
			})
		}
	}
	return chunks
}
