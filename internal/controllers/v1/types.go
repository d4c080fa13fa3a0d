package v1

import (
	ez_uuid "github.com/theo886/weekly-time-allocation/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIProject struct {
	ID string `uri:"id" binding:"required" example:"CP000022"` // The ID of the project
}

type URIUser struct {
	UserID string `uri:"userId" binding:"required" example:"a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"` // The ID of the user
}

type URIEntry struct {
	URIUser
	EntryID string `uri:"entryId" binding:"required" example:"2b9c1c0e-8c0a-4a51-9f1e-0d6f4a7f3c21"` // The ID of the entry
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
