package models

// IdeaEnrichmentResponse is the strict-JSON document the idea enricher asks
// the model to return. Field names line up with ContentIdea so the enriched
// list drops straight into the analysis payload.
type IdeaEnrichmentResponse struct {
	Ideas []ContentIdea `json:"ideas"`
}
