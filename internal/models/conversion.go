package models

// ConvertRequest represents a conversion request, bound from a query string or JSON body
type ConvertRequest struct {
	Time   string `json:"time" form:"time" binding:"required,timeofday" example:"23:45:00"`
	Source string `json:"source" form:"source" binding:"omitempty,tzname" example:"UTC"`
	Target string `json:"target" form:"target" binding:"omitempty,tzname" example:"LHST"`
}

// ConvertResponse represents the result of a conversion
type ConvertResponse struct {
	Source string `json:"source" example:"UTC"`
	Target string `json:"target" example:"LHST"`
	Input  string `json:"input" example:"23:45:00"`
	Output string `json:"output" example:"10:15:00"`
	Line   string `json:"line" example:"UTC 23:45:00 -> LHST 10:15:00"`
}
