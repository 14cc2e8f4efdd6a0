package forensic

import (
	"fmt"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/statements"
	"stock-forensics/internal/types"
)

// Beneish coefficients, from the 1999 paper "The Detection of Earnings
// Manipulation". The intercept and weights are fixed; only the HIGH-risk
// cutoff is configurable.
const (
	beneishIntercept = -4.84
	weightDSRI       = 0.920
	weightGMI        = 0.528
	weightAQI        = 0.404
	weightSGI        = 0.892
	weightDEPI       = 0.115
	weightSGAI       = 0.172 // subtracted
	weightTATA       = 4.679
	weightLVGI       = 0.327 // subtracted
)

// BeneishMScore computes the 8-variable earnings-manipulation index from
// the two most recent statement periods. The ratio-of-ratio indices fall
// back to the neutral multiplier 1.0 when a denominator is zero, so a
// missing line item degrades precision without pushing the score toward
// or away from manipulation. TATA keeps the additive 0.0 fallback.
func (a *Analyzer) BeneishMScore() (result types.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.NewUnknownScore(fmt.Sprintf("error calculating M-Score components: %v", r))
		}
	}()

	income, balance, cashFlow := a.data.IncomeStatement, a.data.BalanceSheet, a.data.CashFlow

	if balance.IsEmpty() || income.IsEmpty() {
		return types.NewUnknownScore("insufficient financial data for M-Score calculation")
	}
	if balance.NumPeriods() < 2 || income.NumPeriods() < 2 {
		return types.NewUnknownScore("need at least 2 periods of data for M-Score calculation")
	}

	receivablesCur := statements.Value(balance, "Accounts Receivable", 0)
	receivablesPrev := statements.Value(balance, "Accounts Receivable", 1)
	revenueCur := statements.Value(income, "Total Revenue", 0)
	revenuePrev := statements.Value(income, "Total Revenue", 1)
	cogsCur := statements.Value(income, "Cost Of Revenue", 0)
	cogsPrev := statements.Value(income, "Cost Of Revenue", 1)
	assetsCur := statements.Value(balance, "Total Assets", 0)
	assetsPrev := statements.Value(balance, "Total Assets", 1)
	currentAssetsCur := statements.Value(balance, "Total Current Assets", 0)
	currentAssetsPrev := statements.Value(balance, "Total Current Assets", 1)
	ppeCur := statements.Value(balance, "Net PPE", 0)
	ppePrev := statements.Value(balance, "Net PPE", 1)
	depreciationCur := statements.AbsValue(cashFlow, "Depreciation", 0)
	depreciationPrev := statements.AbsValue(cashFlow, "Depreciation", 1)
	sgaCur := statements.Value(income, "Selling General And Administration", 0)
	sgaPrev := statements.Value(income, "Selling General And Administration", 1)
	liabilitiesCur := statements.Value(balance, "Total Liabilities Net Minority Interest", 0)
	liabilitiesPrev := statements.Value(balance, "Total Liabilities Net Minority Interest", 1)
	netIncome := statements.Value(income, "Net Income", 0)
	operatingCF := statements.Value(cashFlow, "Operating Cash Flow", 0)

	// DSRI: days sales in receivables index
	recToSalesCur := quant.SafeDivide(receivablesCur, revenueCur, 0)
	recToSalesPrev := quant.SafeDivide(receivablesPrev, revenuePrev, 0)
	dsri := quant.SafeDivide(recToSalesCur, recToSalesPrev, 1.0)

	// GMI: gross margin index, prior over current
	grossMarginPrev := quant.SafeDivide(revenuePrev-cogsPrev, revenuePrev, 0)
	grossMarginCur := quant.SafeDivide(revenueCur-cogsCur, revenueCur, 0)
	gmi := quant.SafeDivide(grossMarginPrev, grossMarginCur, 1.0)

	// AQI: share of assets that are neither current nor PPE
	nonCurrentCur := assetsCur - currentAssetsCur - ppeCur
	nonCurrentPrev := assetsPrev - currentAssetsPrev - ppePrev
	aqiCur := quant.SafeDivide(nonCurrentCur, assetsCur, 0)
	aqiPrev := quant.SafeDivide(nonCurrentPrev, assetsPrev, 0)
	aqi := quant.SafeDivide(aqiCur, aqiPrev, 1.0)

	// SGI: sales growth index
	sgi := quant.SafeDivide(revenueCur, revenuePrev, 1.0)

	// DEPI: depreciation rate index, prior over current
	deprRatePrev := quant.SafeDivide(depreciationPrev, depreciationPrev+ppePrev, 0)
	deprRateCur := quant.SafeDivide(depreciationCur, depreciationCur+ppeCur, 0)
	depi := quant.SafeDivide(deprRatePrev, deprRateCur, 1.0)

	// SGAI: SG&A expense index
	sgaToSalesCur := quant.SafeDivide(sgaCur, revenueCur, 0)
	sgaToSalesPrev := quant.SafeDivide(sgaPrev, revenuePrev, 0)
	sgai := quant.SafeDivide(sgaToSalesCur, sgaToSalesPrev, 1.0)

	// LVGI: leverage index
	leverageCur := quant.SafeDivide(liabilitiesCur, assetsCur, 0)
	leveragePrev := quant.SafeDivide(liabilitiesPrev, assetsPrev, 0)
	lvgi := quant.SafeDivide(leverageCur, leveragePrev, 1.0)

	// TATA: total accruals to total assets
	tata := quant.SafeDivide(netIncome-operatingCF, assetsCur, 0)

	mScore := beneishIntercept +
		weightDSRI*dsri +
		weightGMI*gmi +
		weightAQI*aqi +
		weightSGI*sgi +
		weightDEPI*depi -
		weightSGAI*sgai +
		weightTATA*tata -
		weightLVGI*lvgi

	rounded := quant.Round3(mScore)
	result = types.ScoreResult{
		Score:               &rounded,
		CalculationPossible: true,
		Components: map[string]float64{
			"DSRI": quant.Round3(dsri),
			"GMI":  quant.Round3(gmi),
			"AQI":  quant.Round3(aqi),
			"SGI":  quant.Round3(sgi),
			"DEPI": quant.Round3(depi),
			"SGAI": quant.Round3(sgai),
			"LVGI": quant.Round3(lvgi),
			"TATA": quant.Round3(tata),
		},
	}

	result.RiskLevel, result.Interpretation = a.classifyMScore(mScore)
	return result
}

// classifyMScore applies the manipulation cutoff. The boundary is
// exclusive: an M of exactly -2.22 is still LOW.
func (a *Analyzer) classifyMScore(m float64) (types.RiskLevel, string) {
	if m > a.cfg.Forensic.MScoreThreshold {
		return types.RiskHigh, fmt.Sprintf(
			"M-Score suggests possible earnings manipulation. Score > %.2f indicates higher likelihood of manipulation.",
			a.cfg.Forensic.MScoreThreshold)
	}
	return types.RiskLow, fmt.Sprintf(
		"M-Score suggests lower likelihood of earnings manipulation. Score <= %.2f indicates company is likely not manipulating earnings.",
		a.cfg.Forensic.MScoreThreshold)
}
