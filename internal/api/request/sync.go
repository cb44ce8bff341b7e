package request

// SyncRequest represents the request body for triggering a dividend sync.
// Either RunAll is set, or UserID and PortfolioID identify a single job.
type SyncRequest struct {
	UserID      string `json:"userId,omitempty"`
	PortfolioID string `json:"portfolioId,omitempty"`
	RunAll      bool   `json:"runAll,omitempty"`
}

// CredentialRequest represents the request body for storing a broker API key.
type CredentialRequest struct {
	UserID string `json:"userId"`
	APIKey string `json:"apiKey"`
}
