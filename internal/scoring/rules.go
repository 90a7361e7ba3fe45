package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// outcome is what a single rule evaluation produces. points is always within
// [0, weight]; the optional strength/redFlag/risk feed the result lists.
type outcome struct {
	points   float64
	insight  string
	strength string
	redFlag  string
	risk     *Risk
}

// ruleFunc evaluates one question. followUp is the supplementary answer for
// questions that take one, empty otherwise.
type ruleFunc func(answer, followUp string, weight float64) outcome

// binary covers the yes-is-good questions: full credit on "Yes", zero credit
// plus a red flag and forecast risk on "No", and a rule-specific partial
// fraction for anything else ("Not Sure", unrecognised values).
type binary struct {
	strength      string
	goodInsight   string
	flag          string
	badInsight    string
	risk          Risk
	unsureCredit  float64
	unsureInsight string
}

func (b binary) eval(answer, _ string, weight float64) outcome {
	switch answer {
	case "Yes":
		return outcome{points: weight, insight: b.goodInsight, strength: b.strength}
	case "No":
		r := b.risk
		return outcome{insight: b.badInsight, redFlag: b.flag, risk: &r}
	default:
		return outcome{points: weight * b.unsureCredit, insight: b.unsureInsight}
	}
}

// inverted covers the no-is-good questions, e.g. overdue liabilities.
type inverted struct {
	strength      string
	goodInsight   string
	flag          string
	badInsight    string
	risk          Risk
	unsureCredit  float64
	unsureInsight string
}

func (b inverted) eval(answer, _ string, weight float64) outcome {
	switch answer {
	case "No":
		return outcome{points: weight, insight: b.goodInsight, strength: b.strength}
	case "Yes":
		r := b.risk
		return outcome{insight: b.badInsight, redFlag: b.flag, risk: &r}
	default:
		return outcome{points: weight * b.unsureCredit, insight: b.unsureInsight}
	}
}

// followUpCount parses a numeric follow-up answer. Missing, non-numeric, or
// non-positive values default to 1; a count question always reports at least
// one affected unit.
func followUpCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// rules is the authoritative per-question decision table. Each entry owns its
// literal credit fractions, message text, penalty descriptions, and
// probability labels; stored reports depend on these staying stable.
var rules = map[int]ruleFunc{
	1: binary{
		strength:    "Incorporated entity with limited liability protection",
		goodInsight: "Company is formally incorporated",
		flag:        "Business is not incorporated — personal liability exposure",
		badInsight:  "Company is not incorporated",
		risk: Risk{
			Type:        "Non-incorporation and strike-off exposure",
			Penalty:     "₹50,000–5 Lakhs + Strike-off risk",
			Probability: ProbabilityHigh,
		},
		unsureCredit:  0.4,
		unsureInsight: "Incorporation status unclear; verify against MCA records",
	}.eval,

	2: binary{
		strength:    "Annual ROC filings are up to date",
		goodInsight: "ROC annual returns filed for the last financial year",
		flag:        "Annual ROC returns (AOC-4, MGT-7) not filed",
		badInsight:  "Annual ROC returns are overdue",
		risk: Risk{
			Type:        "ROC late filing penalties",
			Penalty:     "₹100/day per overdue form, no upper cap",
			Probability: ProbabilityHigh,
		},
		unsureCredit:  0.4,
		unsureInsight: "ROC filing status unclear; confirm with your company secretary",
	}.eval,

	3: ruleDINKYC,

	4: binary{
		strength:    "Business is registered under GST",
		goodInsight: "GST registration in place",
		flag:        "Operating without GST registration",
		badInsight:  "No GST registration",
		risk: Risk{
			Type:        "GST registration penalty",
			Penalty:     "10% of tax due (minimum ₹10,000)",
			Probability: ProbabilityHigh,
		},
		unsureCredit:  0.3,
		unsureInsight: "GST applicability unclear; check turnover thresholds",
	}.eval,

	5: ruleGSTReturns,
	6: ruleTaxPlanning,

	7: ruleTrademark,
	8: rulePatents,

	9: binary{
		strength:    "Founder and employee IP assignments signed",
		goodInsight: "IP assignment agreements are in place",
		flag:        "IP assignment agreements missing for founders or employees",
		badInsight:  "IP ownership is not contractually assigned to the company",
		risk: Risk{
			Type:        "IP ownership disputes",
			Penalty:     "Due-diligence failures and investor drop-off",
			Probability: ProbabilityMedium,
		},
		unsureCredit:  0.4,
		unsureInsight: "IP assignment coverage unclear; audit employment contracts",
	}.eval,

	10: binary{
		strength:    "Required industry licenses in place",
		goodInsight: "Industry licenses held as required",
		flag:        "Operating without mandatory industry licenses",
		badInsight:  "Mandatory industry licenses are missing",
		risk: Risk{
			Type:        "Unlicensed operation penalties",
			Penalty:     "Fines up to ₹5 Lakhs + closure orders",
			Probability: ProbabilityHigh,
		},
		unsureCredit:  0.5,
		unsureInsight: "License coverage unclear; map licenses applicable to your sector",
	}.eval,

	11: ruleDPIIT,

	12: binary{
		strength:    "Employee PF/ESI registrations completed",
		goodInsight: "Statutory employee registrations in place",
		flag:        "PF/ESI registrations pending for employees",
		badInsight:  "Statutory employee registrations are missing",
		risk: Risk{
			Type:        "EPFO/ESIC penalties",
			Penalty:     "Interest at 12% + damages up to 100% of dues",
			Probability: ProbabilityMedium,
		},
		unsureCredit:  0.4,
		unsureInsight: "PF/ESI applicability unclear; verify against employee headcount",
	}.eval,

	13: binary{
		strength:    "Books of accounts audited and current",
		goodInsight: "Accounts are audited and up to date",
		flag:        "Books of accounts not audited",
		badInsight:  "Accounts are unaudited or behind",
		risk: Risk{
			Type:        "Audit non-compliance penalty",
			Penalty:     "₹25,000 + funding diligence failures",
			Probability: ProbabilityMedium,
		},
		unsureCredit:  0.5,
		unsureInsight: "Audit status unclear; confirm with your accountant",
	}.eval,

	14: inverted{
		strength:    "No overdue liabilities outstanding",
		goodInsight: "No overdue loans or statutory dues",
		flag:        "Overdue loans, statutory dues, or vendor payments outstanding",
		badInsight:  "Overdue liabilities on the books",
		risk: Risk{
			Type:        "Recovery proceedings and credit damage",
			Penalty:     "Legal recovery costs + credit score impact",
			Probability: ProbabilityHigh,
		},
		unsureCredit:  0.5,
		unsureInsight: "Liability position unclear; reconcile outstanding dues",
	}.eval,

	15: binary{
		strength:    "Six-plus months of financial runway maintained",
		goodInsight: "Healthy runway of at least six months",
		flag:        "Less than six months of financial runway",
		badInsight:  "Runway below the six-month threshold",
		risk: Risk{
			Type:        "Cash-flow insolvency",
			Penalty:     "Distress financing or shutdown within the year",
			Probability: ProbabilityMedium,
		},
		unsureCredit:  0.4,
		unsureInsight: "Runway unknown; build a rolling cash-flow projection",
	}.eval,
}

// ruleDINKYC scales its flag and penalty by the number of directors whose
// KYC is pending, taken from the follow-up answer.
func ruleDINKYC(answer, followUp string, weight float64) outcome {
	switch answer {
	case "Yes":
		return outcome{
			points:   weight,
			insight:  "DIN KYC completed for all directors",
			strength: "Director KYC compliant across the board",
		}
	case "No":
		n := followUpCount(followUp)
		msg := fmt.Sprintf("DIN KYC pending for %d director(s)", n)
		return outcome{
			insight: msg,
			redFlag: msg,
			risk: &Risk{
				Type:        "Director disqualification risk",
				Penalty:     fmt.Sprintf("₹%d (₹5,000 × %d director(s)) + deactivated DINs", 5000*n, n),
				Probability: ProbabilityHigh,
			},
		}
	default:
		return outcome{
			points:  weight * 0.4,
			insight: "DIN KYC status unclear; check director filings on MCA",
		}
	}
}

// ruleGSTReturns scales by the number of months of missed returns. Three or
// more missed months forecast as high probability, fewer as medium.
func ruleGSTReturns(answer, followUp string, weight float64) outcome {
	switch answer {
	case "Yes":
		return outcome{
			points:   weight,
			insight:  "GST returns filed on time",
			strength: "GST return filings current and on schedule",
		}
	case "No":
		n := followUpCount(followUp)
		prob := ProbabilityMedium
		if n >= 3 {
			prob = ProbabilityHigh
		}
		msg := fmt.Sprintf("GST returns missed for %d month(s)", n)
		return outcome{
			insight: msg,
			redFlag: msg,
			risk: &Risk{
				Type:        "GST late fees and interest",
				Penalty:     fmt.Sprintf("≈₹%d in late fees + 18%% interest on dues", 1500*n),
				Probability: prob,
			},
		}
	default:
		return outcome{
			points:  weight * 0.4,
			insight: "GST filing status unclear; pull the filing history from the GST portal",
		}
	}
}

// ruleTaxPlanning has no bad state: skipping tax planning costs points but
// raises no flag.
func ruleTaxPlanning(answer, _ string, weight float64) outcome {
	if answer == "Yes" {
		return outcome{
			points:   weight,
			insight:  "Tax planning measures implemented",
			strength: "Structured tax planning in place",
		}
	}
	return outcome{
		points:  weight * 0.6,
		insight: "No structured tax planning; potential savings untapped",
	}
}

func ruleTrademark(answer, _ string, weight float64) outcome {
	switch answer {
	case "Yes":
		return outcome{
			points:   weight,
			insight:  "Brand name is trademark protected",
			strength: "Registered trademark secures the brand",
		}
	case "In Process":
		return outcome{
			points:  weight * 0.7,
			insight: "Trademark application under examination",
		}
	case "No":
		return outcome{
			insight: "Brand name is unprotected",
			redFlag: "Brand name is not trademarked",
			risk: &Risk{
				Type:        "Brand hijack exposure",
				Penalty:     "Rebranding + opposition costs ₹2–10 Lakhs",
				Probability: ProbabilityMedium,
			},
		}
	default:
		return outcome{
			points:  weight * 0.5,
			insight: "Trademark status unclear; run a registry search",
		}
	}
}

// rulePatents is the four-option enumerated rule. No option zeroes out; the
// fractions express how applicable protection is to the business.
func rulePatents(answer, _ string, weight float64) outcome {
	switch answer {
	case "Yes":
		return outcome{
			points:   weight,
			insight:  "Proprietary technology protected by patent",
			strength: "Patented technology moat",
		}
	case "Filed":
		return outcome{
			points:  weight * 0.9,
			insight: "Patent application filed and pending",
		}
	case "Not Applicable":
		return outcome{
			points:  weight * 0.8,
			insight: "Patents not applicable to this business model",
		}
	default:
		return outcome{
			points:  weight * 0.3,
			insight: "Proprietary work is unprotected; evaluate filing options",
		}
	}
}

// ruleDPIIT is informational like tax planning: recognition unlocks benefits
// but its absence is not a compliance gap.
func ruleDPIIT(answer, _ string, weight float64) outcome {
	if answer == "Yes" {
		return outcome{
			points:   weight,
			insight:  "DPIIT recognition held",
			strength: "DPIIT-recognized startup with tax and IPR benefits",
		}
	}
	return outcome{
		points:  weight * 0.7,
		insight: "No DPIIT recognition; Section 80-IAC and IPR benefits unavailable",
	}
}
