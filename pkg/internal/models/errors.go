package models

import "gorm.io/datatypes"

// ErrorLog keeps server side and explicitly flagged errors for operational
// visibility. Writing it is best effort and never blocks a response.
type ErrorLog struct {
	BaseModel

	Message    string            `json:"message"`
	StatusCode int               `json:"status_code"`
	Details    string            `json:"details"`
	Context    datatypes.JSONMap `json:"context"`
}
