package forensic

import (
	"fmt"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/statements"
	"stock-forensics/internal/types"
)

// Altman coefficients for the original public-manufacturer model.
const (
	weightX1 = 1.2 // working capital / total assets
	weightX2 = 1.4 // retained earnings / total assets
	weightX3 = 3.3 // EBIT / total assets
	weightX4 = 0.6 // market value of equity / total liabilities
	weightX5 = 1.0 // sales / total assets
)

// AltmanZScore computes the 5-ratio bankruptcy-distress index from the
// most recent statement period plus the market capitalization snapshot.
// All ratios degrade to 0.0 on missing data.
func (a *Analyzer) AltmanZScore() (result types.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.NewUnknownScore(fmt.Sprintf("error calculating Z-Score components: %v", r))
		}
	}()

	income, balance := a.data.IncomeStatement, a.data.BalanceSheet
	if balance.IsEmpty() || income.IsEmpty() {
		return types.NewUnknownScore("insufficient financial data for Z-Score calculation")
	}

	currentAssets := statements.Value(balance, "Total Current Assets", 0)
	currentLiabilities := statements.Value(balance, "Total Current Liabilities", 0)
	totalAssets := statements.Value(balance, "Total Assets", 0)
	totalLiabilities := statements.Value(balance, "Total Liabilities Net Minority Interest", 0)
	retainedEarnings := statements.Value(balance, "Retained Earnings", 0)
	ebit := statements.Value(income, "EBIT", 0)
	revenue := statements.Value(income, "Total Revenue", 0)
	marketCap := a.data.Snapshot.MarketCap

	workingCapital := currentAssets - currentLiabilities

	x1 := quant.SafeDivide(workingCapital, totalAssets, 0)
	x2 := quant.SafeDivide(retainedEarnings, totalAssets, 0)
	x3 := quant.SafeDivide(ebit, totalAssets, 0)
	x4 := quant.SafeDivide(marketCap, totalLiabilities, 0)
	x5 := quant.SafeDivide(revenue, totalAssets, 0)

	zScore := weightX1*x1 + weightX2*x2 + weightX3*x3 + weightX4*x4 + weightX5*x5

	rounded := quant.Round3(zScore)
	result = types.ScoreResult{
		Score:               &rounded,
		CalculationPossible: true,
		Components: map[string]float64{
			"Working_Capital_to_Total_Assets":   quant.Round3(x1),
			"Retained_Earnings_to_Total_Assets": quant.Round3(x2),
			"EBIT_to_Total_Assets":              quant.Round3(x3),
			"Market_Value_to_Total_Liabilities": quant.Round3(x4),
			"Sales_to_Total_Assets":             quant.Round3(x5),
		},
	}

	result.RiskLevel, result.Interpretation = a.classifyZScore(zScore)
	return result
}

// classifyZScore applies the safe/grey/distress boundaries. Both cutoffs
// are exclusive: Z of exactly 2.99 is still grey, exactly 1.81 is distress.
func (a *Analyzer) classifyZScore(z float64) (types.RiskLevel, string) {
	switch {
	case z > a.cfg.Forensic.ZScoreSafe:
		return types.RiskLow, "Z-Score indicates Safe Zone. Low probability of bankruptcy."
	case z > a.cfg.Forensic.ZScoreDistress:
		return types.RiskMedium, "Z-Score indicates Grey Zone. Moderate risk of financial distress."
	default:
		return types.RiskHigh, "Z-Score indicates Distress Zone. High probability of bankruptcy within 2 years."
	}
}
