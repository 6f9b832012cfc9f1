package validator

// MinBudgetYear is the earliest year accepted for a project budget.
const MinBudgetYear = 1990

func required(message string) Rule[any] {
	return Rule[any]{Check: Required, Message: message}
}

func yearRules() []Rule[any] {
	return []Rule[any]{
		required("Year is required"),
		{Check: IsNumber, Message: "Year must be a number"},
		{Check: YearSince(MinBudgetYear), Message: "Year must be between 1990 and the current year"},
	}
}

func projectNameRules() []Rule[any] {
	return []Rule[any]{
		required("Project name is required"),
		{Check: IsString, Message: "Project name must be a string"},
	}
}

func currencyRules() []Rule[any] {
	return []Rule[any]{
		required("Currency is required"),
		{Check: IsString, Message: "Currency must be a string"},
		{Check: ISO4217, Message: "Currency must adhere to ISO 4217 standards"},
	}
}

func amountRules(label string) []Rule[any] {
	return []Rule[any]{
		required(label + " is required"),
		{Check: IsNumber, Message: label + " must be a number"},
		{Check: NonNegative, Message: label + " must not be negative"},
	}
}

func monthsRules(label string) []Rule[any] {
	return []Rule[any]{
		required(label + " is required"),
		{Check: IsInteger, Message: label + " must be an integer"},
		{Check: NonNegative, Message: label + " must not be negative"},
		{Check: FitsInt32, Message: label + " is too large"},
	}
}

// CurrencyRules validates a single-project conversion request body.
func CurrencyRules() RuleSet[any] {
	return RuleSet[any]{
		"year":        yearRules(),
		"projectName": projectNameRules(),
		"currency":    currencyRules(),
	}
}

// CreateBudgetRules validates a project budget creation body.
func CreateBudgetRules() RuleSet[any] {
	return RuleSet[any]{
		"projectId": {
			required("Project ID is required"),
			{Check: IsInteger, Message: "Project ID must be an integer"},
		},
		"projectName":                    projectNameRules(),
		"year":                           yearRules(),
		"currency":                       currencyRules(),
		"initialBudgetLocal":             amountRules("Initial local budget"),
		"budgetUsd":                      amountRules("USD budget"),
		"initialScheduleEstimateMonths":  monthsRules("Initial schedule estimate"),
		"adjustedScheduleEstimateMonths": monthsRules("Adjusted schedule estimate"),
		"contingencyRate":                amountRules("Contingency rate"),
		"escalationRate":                 amountRules("Escalation rate"),
		"finalBudgetUsd":                 amountRules("Final USD budget"),
	}
}

// UpdateBudgetRules validates a project budget update body. The project id
// comes from the request path, not the body.
func UpdateBudgetRules() RuleSet[any] {
	return Without(CreateBudgetRules(), "projectId")
}
