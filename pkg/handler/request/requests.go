package request

// Request and response.. Maybe relegate this into other later?

// Body of a batch lookup submission.
type BatchSubmitRequest struct {
	Genus    string   `json:"genus"`
	Gene_IDs []string `json:"genes"` // gene IDs, processed in order
}

// Structure for a single gene lookup
type GeneQueryRequest struct {
	Genus   string `json:"genus"`
	Gene_ID string `json:"gene_id"`
}
