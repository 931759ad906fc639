package trade

import (
	"strings"

	"github.com/synergytrade/backend/internal/domain/shared"
)

// MatchPurchaseOrder selects the open purchase order whose reference number
// matches the reference extracted from a delivery document. A match means the
// order's reference contains the extracted reference or vice versa, so a bare
// supplier order number like "998877" still finds "WMS-SO-998877".
//
// The first match in slice order wins; there is no similarity ranking. When
// nothing matches the caller gets ErrUnmatchedReference and must resolve the
// receipt manually - a receipt is never attached to an arbitrary open order.
func MatchPurchaseOrder(extractedReference string, orders []PurchaseOrder) (*PurchaseOrder, error) {
	ref := strings.TrimSpace(extractedReference)
	if ref == "" {
		return nil, shared.ErrUnmatchedReference
	}

	for i := range orders {
		po := &orders[i]
		if !po.IsOpen() || po.ReferenceNo == "" {
			continue
		}
		if strings.Contains(po.ReferenceNo, ref) || strings.Contains(ref, po.ReferenceNo) {
			return po, nil
		}
	}
	return nil, shared.ErrUnmatchedReference
}
