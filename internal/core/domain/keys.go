package domain

import "time"

// Natural-key builders. The tenant id lives in its own column, so keys only
// encode the business fields. Optional components use an explicit "-"
// placeholder instead of an empty segment: the key column is NOT NULL and
// composite-uniqueness can never degrade into duplicate NULL rows.

const absentKeyPart = "-"

func keyPart(s string) string {
	if s == "" {
		return absentKeyPart
	}
	return s
}

// BuildPostingKey identifies one ERP document posting: order reference plus
// document type (e.g. "ORD-42" + "SALES_INVOICE").
func BuildPostingKey(orderRef, docType string) string {
	return keyPart(orderRef) + ":" + keyPart(docType)
}

// BuildLabelKey identifies one shipment-label issuance for an order with a
// carrier. Carrier may be absent when the tenant uses a single default.
func BuildLabelKey(orderRef, carrier string) string {
	return keyPart(orderRef) + ":" + keyPart(carrier)
}

// BuildTrackingKey identifies one tracking-number push to a marketplace.
func BuildTrackingKey(orderRef, trackingNo string) string {
	return keyPart(orderRef) + ":" + keyPart(trackingNo)
}

// BuildSyncJobKey identifies one order-sync window for a sales channel.
func BuildSyncJobKey(channel string, windowStart time.Time) string {
	return keyPart(channel) + ":" + windowStart.UTC().Format(time.RFC3339)
}
