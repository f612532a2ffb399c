package service

import (
	"math"

	"legaladvisor-backend/models"
)

const (
	retirementCap  = 6000.0
	charityCap     = 500.0
	allocationRate = 0.1
)

// OptimizeTax computes taxable income and recommended allocations.
// Expenses are accepted but do not affect the result.
func OptimizeTax(in models.TaxInput) models.TaxResult {
	allocations := models.TaxAllocations{
		Retirement: math.Min(retirementCap, in.Income*allocationRate),
		Charity:    math.Min(charityCap, in.Income*allocationRate),
	}
	return models.TaxResult{
		TaxableIncome: math.Max(0, in.Income-in.Deductions),
		Allocations:   allocations,
		TotalSavings:  allocations.Retirement + allocations.Charity,
	}
}
