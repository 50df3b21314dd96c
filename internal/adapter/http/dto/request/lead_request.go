package request

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeadNotesRequest struct {
	Notes string `json:"notes"`
}

type AccessToggleRequest struct {
	IsAccessDisabled *bool `json:"is_access_disabled" binding:"required"`
}
