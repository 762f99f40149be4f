// Package verification normalizes the third-party identity provider's
// semi-structured check response into a flat list of review reasons. The
// provider changed its payload shape several times; the legacy shapes are
// still present in stored rows and must keep parsing.
package verification

import (
	"encoding/json"
	"strings"
)

// Failure is one reason an identity check needs human review.
type Failure struct {
	Check  string `json:"check"`
	Reason string `json:"reason"`
	Code   string `json:"code"`
}

const (
	defaultCheckName   = "Verification Check"
	defaultReason      = "Verification requires review"
	genericReviewText  = "Verification check requires manual review"
	genericReviewCode  = "REVIEW"
	legacyFailedReason = "Verification failed"
	defaultCode        = "N/A"
)

// ParseError is the single synthetic failure returned when a payload cannot
// be decoded. The parser never returns an error; an undecodable payload
// degrades to this entry so review checks are never silently dropped.
var ParseError = Failure{
	Check:  "Verification Parse Error",
	Reason: "Unable to parse verification response",
	Code:   "PARSE_ERROR",
}

type payload struct {
	CheckStatuses        []checkStatus  `json:"checkStatuses"`
	AddressVerification  *legacyCheck   `json:"address_verification"`
	IdentityVerification *legacyCheck   `json:"identity_verification"`
	PEPsAndSanctions     *legacySummary `json:"peps_and_sanctions"`
}

type checkStatus struct {
	Result        resultField    `json:"result"`
	SourceResults *sourceResults `json:"sourceResults"`
}

type resultField struct {
	Result string `json:"result"`
}

type sourceResults struct {
	Rule    string         `json:"rule"`
	Results []sourceResult `json:"results"`
}

type sourceResult struct {
	Detail *detail `json:"detail"`
}

type detail struct {
	Reasons []reviewReason `json:"reasons"`
}

type reviewReason struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
	Code   string `json:"code"`
}

type legacyCheck struct {
	Result string           `json:"result"`
	Checks []legacySubCheck `json:"checks"`
}

type legacySubCheck struct {
	Result        string `json:"result"`
	FailureReason string `json:"failure_reason"`
	WarningReason string `json:"warning_reason"`
	ResultCode    string `json:"result_code"`
}

type legacySummary struct {
	Result        string `json:"result"`
	FailureReason string `json:"failure_reason"`
}

// ParseFailures extracts every review reason from a raw provider payload.
// raw may be a JSON-encoded string, raw bytes, or an already-decoded value.
// An empty result paired with a non-review overall result means the check
// passed, not that data was missing.
func ParseFailures(raw any) []Failure {
	p, ok := decode(raw)
	if !ok {
		return []Failure{ParseError}
	}

	var failures []Failure

	for _, cs := range p.CheckStatuses {
		if !strings.EqualFold(cs.Result.Result, "review") || cs.SourceResults == nil {
			continue
		}
		name := cs.SourceResults.Rule
		if name == "" {
			name = defaultCheckName
		}
		emitted := false
		for _, result := range cs.SourceResults.Results {
			if result.Detail == nil {
				continue
			}
			for _, reason := range result.Detail.Reasons {
				if !strings.EqualFold(reason.Result, "review") {
					continue
				}
				failures = append(failures, Failure{
					Check:  name,
					Reason: firstNonEmpty(reason.Reason, defaultReason),
					Code:   firstNonEmpty(reason.Code, defaultCode),
				})
				emitted = true
			}
		}
		// A check flagged for review must surface even when the provider
		// attached no specific reasons.
		if !emitted {
			failures = append(failures, Failure{Check: name, Reason: genericReviewText, Code: genericReviewCode})
		}
	}

	// Legacy shapes are consulted only when the primary walk found nothing,
	// in fixed order: address, identity, PEP/sanctions.
	if len(failures) == 0 && p.AddressVerification != nil && p.AddressVerification.Result != "passed" {
		failures = append(failures, legacyFailures("Address Verification", p.AddressVerification.Checks)...)
	}
	if len(failures) == 0 && p.IdentityVerification != nil && p.IdentityVerification.Result != "passed" {
		failures = append(failures, legacyFailures("Identity Verification", p.IdentityVerification.Checks)...)
	}
	if len(failures) == 0 && p.PEPsAndSanctions != nil && p.PEPsAndSanctions.Result != "passed" {
		failures = append(failures, Failure{
			Check:  "PEP & Sanctions Check",
			Reason: firstNonEmpty(p.PEPsAndSanctions.FailureReason, "Check failed or requires review"),
			Code:   firstNonEmpty(p.PEPsAndSanctions.Result, defaultCode),
		})
	}

	return failures
}

// RequiresReview classifies an identity check from its overall result and
// parsed failures. Callers use this rather than comparing raw strings.
func RequiresReview(overallResult string, failures []Failure) bool {
	return len(failures) > 0 || strings.EqualFold(overallResult, "review")
}

func legacyFailures(name string, checks []legacySubCheck) []Failure {
	var out []Failure
	for _, check := range checks {
		if check.Result == "passed" {
			continue
		}
		out = append(out, Failure{
			Check:  name,
			Reason: firstNonEmpty(check.FailureReason, check.WarningReason, legacyFailedReason),
			Code:   firstNonEmpty(check.ResultCode, defaultCode),
		})
	}
	return out
}

func decode(raw any) (payload, bool) {
	var p payload
	switch v := raw.(type) {
	case nil:
		return p, true
	case string:
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			return p, false
		}
	case []byte:
		if err := json.Unmarshal(v, &p); err != nil {
			return p, false
		}
	default:
		// Already-decoded values round-trip through JSON so the same shape
		// rules apply regardless of how the payload arrived.
		b, err := json.Marshal(v)
		if err != nil {
			return p, false
		}
		if err := json.Unmarshal(b, &p); err != nil {
			return p, false
		}
	}
	return p, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
