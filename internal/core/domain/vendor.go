package domain

import (
	"encoding/json"
	"strings"
)

// VendorError is one entry of a vendor response's error list.
type VendorError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VendorResponse is the normalized shape every vendor adapter decodes into.
// Transport success is not business success: a 2xx response can still carry
// a vendor-level failure body, and classification happens here, once, for
// all four integrations.
type VendorResponse struct {
	Status     string          `json:"status"`
	SuccessCnt int             `json:"success_cnt"`
	FailCnt    int             `json:"fail_cnt"`
	ResultID   string          `json:"result_id,omitempty"` // vendor-assigned identifier
	Errors     []VendorError   `json:"errors,omitempty"`
	Raw        json.RawMessage `json:"-"` // verbatim body, kept for the attempt ledger
}

// BusinessSuccess applies the canonical classification rule: the vendor's
// own status field indicates success AND the success counter is positive AND
// the failure counter is zero.
func (r *VendorResponse) BusinessSuccess() bool {
	return statusIndicatesSuccess(r.Status) && r.SuccessCnt > 0 && r.FailCnt == 0
}

func statusIndicatesSuccess(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "200", "OK", "SUCCESS":
		return true
	}
	return false
}

// SessionExpired detects the vendor's "unauthorized / session expired"
// signature, which triggers exactly one transparent re-auth retry in the
// executor instead of consuming a scheduled retry.
func (r *VendorResponse) SessionExpired() bool {
	if r.Status == "401" {
		return true
	}
	for _, e := range r.Errors {
		if e.Code == "401" {
			return true
		}
		msg := strings.ToLower(e.Message)
		if strings.Contains(msg, "expired") || strings.Contains(msg, "unauthorized") {
			return true
		}
	}
	return false
}

// FirstError returns the leading vendor error, or a synthetic one derived
// from the status field when the error list is empty.
func (r *VendorResponse) FirstError() VendorError {
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return VendorError{Code: r.Status, Message: "vendor reported failure"}
}
