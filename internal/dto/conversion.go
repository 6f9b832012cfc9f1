package dto

// CurrencyConversionRequest asks for the final budget of a project and year in
// another currency. The body is checked by validator.CurrencyRules before it is bound.
type CurrencyConversionRequest struct {
	Year        int    `json:"year"`
	ProjectName string `json:"projectName"`
	Currency    string `json:"currency"`
}

// ConvertBudgetsRequest asks for TTD projections of several projects.
type ConvertBudgetsRequest struct {
	ProjectNames []string `json:"projectNames" binding:"required,min=1,dive,required"`
}
