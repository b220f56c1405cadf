package model

// Result shapes for the reconciliation endpoints. The web layer returns
// these verbatim as JSON.

type CompletenessResult struct {
	Created int    `json:"created"`
	Checked int    `json:"checked"`
	Message string `json:"message"`
}

type CleanupResult struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

type SyncResult struct {
	Created int    `json:"created"`
	Removed int    `json:"removed"`
	Checked int    `json:"checked"`
	Message string `json:"message"`
}
