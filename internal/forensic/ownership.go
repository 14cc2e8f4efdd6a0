package forensic

import (
	"fmt"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

// OwnershipAnalysis evaluates the shareholding structure against the
// ownership rule set. Insider-ownership extremes raise the level to
// MEDIUM; a low institutional stake is noted without elevating the level
// on its own; a high short-interest ratio escalates straight to HIGH.
func (a *Analyzer) OwnershipAnalysis() types.OwnershipResult {
	holding := a.data.Shareholding
	cfg := a.cfg.Ownership

	result := types.OwnershipResult{
		InsiderOwnershipPercent:       quant.Round2(holding.InsiderOwnership),
		InstitutionalOwnershipPercent: quant.Round2(holding.InstitutionalOwnership),
		Findings:                      []types.RiskFinding{},
		RiskLevel:                     types.RiskLow,
	}

	if holding.InsiderOwnership < cfg.InsiderLowPercent {
		result.Findings = append(result.Findings, types.RiskFinding{
			Category:    "Ownership",
			Description: fmt.Sprintf("Very low insider ownership (< %.0f%%) - management may lack confidence", cfg.InsiderLowPercent),
			Severity:    types.RiskMedium,
			Value:       fmt.Sprintf("%.2f%%", holding.InsiderOwnership),
		})
		result.RiskLevel = types.RiskMedium
	} else if holding.InsiderOwnership > cfg.InsiderHighPercent {
		result.Findings = append(result.Findings, types.RiskFinding{
			Category:    "Ownership",
			Description: fmt.Sprintf("Very high insider ownership (> %.0f%%) - potential corporate governance concerns", cfg.InsiderHighPercent),
			Severity:    types.RiskMedium,
			Value:       fmt.Sprintf("%.2f%%", holding.InsiderOwnership),
		})
		result.RiskLevel = types.RiskMedium
	}

	if holding.InstitutionalOwnership < cfg.InstitutionalLowPercent {
		result.Findings = append(result.Findings, types.RiskFinding{
			Category:    "Ownership",
			Description: fmt.Sprintf("Low institutional ownership (< %.0f%%) - may indicate lack of institutional confidence", cfg.InstitutionalLowPercent),
			Severity:    types.RiskLow,
			Value:       fmt.Sprintf("%.2f%%", holding.InstitutionalOwnership),
		})
	}

	if holding.ShortRatio > cfg.ShortRatioHigh {
		result.Findings = append(result.Findings, types.RiskFinding{
			Category:    "Ownership",
			Description: fmt.Sprintf("High short interest ratio (%.1f) - significant bearish sentiment", holding.ShortRatio),
			Severity:    types.RiskHigh,
			Value:       fmt.Sprintf("%.1f", holding.ShortRatio),
		})
		result.RiskLevel = types.RiskHigh
	}

	if len(result.Findings) == 0 {
		result.Interpretation = "Shareholding pattern appears normal with no significant red flags."
	} else {
		result.Interpretation = fmt.Sprintf("Found %d potential concerns in shareholding pattern.", len(result.Findings))
	}
	return result
}
