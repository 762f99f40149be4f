package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFailures_ReviewReasons(t *testing.T) {
	payload := `{
		"checkStatuses": [
			{
				"result": {"result": "Review"},
				"sourceResults": {
					"rule": "Address Match",
					"results": [
						{"detail": {"reasons": [
							{"result": "review", "reason": "No trace at stated address", "code": "ADDR_NO_TRACE"},
							{"result": "pass", "reason": "Electoral roll match", "code": "ER_OK"}
						]}}
					]
				}
			},
			{
				"result": {"result": "pass"},
				"sourceResults": {"rule": "Document Check", "results": []}
			}
		]
	}`

	failures := ParseFailures(payload)

	require.Len(t, failures, 1)
	assert.Equal(t, Failure{
		Check:  "Address Match",
		Reason: "No trace at stated address",
		Code:   "ADDR_NO_TRACE",
	}, failures[0])
}

func TestParseFailures_ReviewDefaults(t *testing.T) {
	payload := `{
		"checkStatuses": [
			{
				"result": {"result": "review"},
				"sourceResults": {
					"results": [
						{"detail": {"reasons": [{"result": "review"}]}}
					]
				}
			}
		]
	}`

	failures := ParseFailures(payload)

	require.Len(t, failures, 1)
	assert.Equal(t, "Verification Check", failures[0].Check)
	assert.Equal(t, "Verification requires review", failures[0].Reason)
	assert.Equal(t, "N/A", failures[0].Code)
}

func TestParseFailures_ReviewWithoutReasons(t *testing.T) {
	// A check flagged for review with no reason detail still surfaces.
	payload := `{
		"checkStatuses": [
			{
				"result": {"result": "review"},
				"sourceResults": {"rule": "PEP Screening", "results": []}
			}
		]
	}`

	failures := ParseFailures(payload)

	require.Len(t, failures, 1)
	assert.Equal(t, Failure{
		Check:  "PEP Screening",
		Reason: "Verification check requires manual review",
		Code:   "REVIEW",
	}, failures[0])
}

func TestParseFailures_LegacyFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Failure
	}{
		{
			name: "address sub-checks",
			payload: `{
				"address_verification": {
					"result": "failed",
					"checks": [
						{"result": "failed", "failure_reason": "Address mismatch", "result_code": "AV01"},
						{"result": "passed"},
						{"result": "warning", "warning_reason": "Recent move"}
					]
				}
			}`,
			want: []Failure{
				{Check: "Address Verification", Reason: "Address mismatch", Code: "AV01"},
				{Check: "Address Verification", Reason: "Recent move", Code: "N/A"},
			},
		},
		{
			name: "identity after address passes",
			payload: `{
				"address_verification": {"result": "passed"},
				"identity_verification": {
					"result": "failed",
					"checks": [{"result": "failed"}]
				}
			}`,
			want: []Failure{
				{Check: "Identity Verification", Reason: "Verification failed", Code: "N/A"},
			},
		},
		{
			name: "pep summary",
			payload: `{
				"address_verification": {"result": "passed"},
				"identity_verification": {"result": "passed"},
				"peps_and_sanctions": {"result": "review", "failure_reason": "Possible sanctions match"}
			}`,
			want: []Failure{
				{Check: "PEP & Sanctions Check", Reason: "Possible sanctions match", Code: "review"},
			},
		},
		{
			name: "pep summary defaults",
			payload: `{
				"peps_and_sanctions": {"result": "failed"}
			}`,
			want: []Failure{
				{Check: "PEP & Sanctions Check", Reason: "Check failed or requires review", Code: "failed"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFailures(tc.payload))
		})
	}
}

func TestParseFailures_PrimaryShadowsLegacy(t *testing.T) {
	// Once the primary walk emits anything, legacy sections are ignored.
	payload := `{
		"checkStatuses": [
			{
				"result": {"result": "review"},
				"sourceResults": {"rule": "Identity Match", "results": []}
			}
		],
		"peps_and_sanctions": {"result": "failed", "failure_reason": "should not appear"}
	}`

	failures := ParseFailures(payload)

	require.Len(t, failures, 1)
	assert.Equal(t, "Identity Match", failures[0].Check)
}

func TestParseFailures_Undecodable(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "not json", raw: "not json"},
		{name: "empty string", raw: ""},
		{name: "truncated", raw: `{"checkStatuses": [`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			failures := ParseFailures(tc.raw)
			require.Len(t, failures, 1)
			assert.Equal(t, ParseError, failures[0])
		})
	}
}

func TestParseFailures_AllPassed(t *testing.T) {
	payload := `{
		"checkStatuses": [
			{"result": {"result": "pass"}, "sourceResults": {"rule": "Address Match"}}
		],
		"address_verification": {"result": "passed"},
		"identity_verification": {"result": "passed"},
		"peps_and_sanctions": {"result": "passed"}
	}`

	assert.Empty(t, ParseFailures(payload))
}

func TestParseFailures_DecodedValue(t *testing.T) {
	raw := map[string]any{
		"checkStatuses": []any{
			map[string]any{
				"result": map[string]any{"result": "review"},
				"sourceResults": map[string]any{
					"rule":    "Address Match",
					"results": []any{},
				},
			},
		},
	}

	failures := ParseFailures(raw)

	require.Len(t, failures, 1)
	assert.Equal(t, "Address Match", failures[0].Check)
}

func TestRequiresReview(t *testing.T) {
	assert.True(t, RequiresReview("Review", nil))
	assert.True(t, RequiresReview("passed", []Failure{{Check: "x"}}))
	assert.False(t, RequiresReview("passed", nil))
}
