package forensic

import (
	"fmt"
	"math"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/statements"
	"stock-forensics/internal/types"
)

// FinancialRedFlags evaluates the additive ratio rule set. Each triggered
// rule contributes a fixed increment; flags accumulate and never cancel,
// with the total capped at 1.0.
func (a *Analyzer) FinancialRedFlags() types.RedFlagResult {
	ratios := a.data.Ratios

	findings := []types.RiskFinding{}
	riskScore := 0.0

	if ratios.ProfitMargin < 0 {
		findings = append(findings, types.RiskFinding{
			Category:    "Profitability",
			Description: "Negative profit margin",
			Severity:    types.RiskHigh,
			Value:       fmt.Sprintf("%.2f%%", ratios.ProfitMargin),
		})
		riskScore += 0.2
	} else if ratios.ProfitMargin < 5 {
		findings = append(findings, types.RiskFinding{
			Category:    "Profitability",
			Description: "Low profit margin",
			Severity:    types.RiskMedium,
			Value:       fmt.Sprintf("%.2f%%", ratios.ProfitMargin),
		})
		riskScore += 0.1
	}

	if ratios.DebtToEquity > 2 {
		findings = append(findings, types.RiskFinding{
			Category:    "Leverage",
			Description: "High debt-to-equity ratio",
			Severity:    types.RiskHigh,
			Value:       fmt.Sprintf("%.2f", ratios.DebtToEquity),
		})
		riskScore += 0.2
	} else if ratios.DebtToEquity > 1 {
		findings = append(findings, types.RiskFinding{
			Category:    "Leverage",
			Description: "Elevated debt-to-equity ratio",
			Severity:    types.RiskMedium,
			Value:       fmt.Sprintf("%.2f", ratios.DebtToEquity),
		})
		riskScore += 0.1
	}

	if ratios.CurrentRatio < 1 {
		findings = append(findings, types.RiskFinding{
			Category:    "Liquidity",
			Description: "Current ratio below 1 - potential liquidity issues",
			Severity:    types.RiskHigh,
			Value:       fmt.Sprintf("%.2f", ratios.CurrentRatio),
		})
		riskScore += 0.2
	} else if ratios.CurrentRatio < 1.5 {
		findings = append(findings, types.RiskFinding{
			Category:    "Liquidity",
			Description: "Low current ratio",
			Severity:    types.RiskMedium,
			Value:       fmt.Sprintf("%.2f", ratios.CurrentRatio),
		})
		riskScore += 0.1
	}

	if ratios.ROE < 0 {
		findings = append(findings, types.RiskFinding{
			Category:    "Profitability",
			Description: "Negative Return on Equity",
			Severity:    types.RiskHigh,
			Value:       fmt.Sprintf("%.2f%%", ratios.ROE),
		})
		riskScore += 0.15
	}

	income := a.data.IncomeStatement
	if !income.IsEmpty() && income.NumPeriods() >= 2 {
		revenueCur := statements.Value(income, "Total Revenue", 0)
		revenuePrev := statements.Value(income, "Total Revenue", 1)
		revenueGrowth := quant.PercentChange(revenueCur, revenuePrev)
		if revenueGrowth < -10 {
			findings = append(findings, types.RiskFinding{
				Category:    "Growth",
				Description: "Significant revenue decline",
				Severity:    types.RiskHigh,
				Value:       fmt.Sprintf("%.2f%%", revenueGrowth),
			})
			riskScore += 0.15
		}
	}

	riskScore = math.Min(riskScore, 1.0)

	return types.RedFlagResult{
		Findings:   findings,
		TotalFlags: len(findings),
		RiskScore:  quant.Round2(riskScore),
		RiskLevel:  riskLevelFromScore(riskScore),
	}
}
