package models

// TaxInput represents the financial figures submitted to the tax optimizer
type TaxInput struct {
	Income     float64 `json:"income" binding:"gte=0"`
	Expenses   float64 `json:"expenses" binding:"gte=0"`
	Deductions float64 `json:"deductions" binding:"gte=0"`
}

// TaxAllocations represents recommended allocations
type TaxAllocations struct {
	Retirement float64 `json:"retirement"`
	Charity    float64 `json:"charity"`
}

// TaxResult represents the optimizer output
type TaxResult struct {
	TaxableIncome float64        `json:"taxable_income"`
	Allocations   TaxAllocations `json:"allocations"`
	TotalSavings  float64        `json:"total_savings"`
}
