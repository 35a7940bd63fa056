package orders

import (
	"fmt"
	"strconv"
	"strings"
)

// externalRefPrefix is the tag embedded in the gateway preference so the
// webhook can recover the originating order.
const externalRefPrefix = "order-"

// ExternalRef builds the gateway external reference for an order id.
func ExternalRef(orderID int64) string {
	return externalRefPrefix + strconv.FormatInt(orderID, 10)
}

// ParseExternalRef recovers the order id from an external reference.
func ParseExternalRef(ref string) (int64, error) {
	raw, ok := strings.CutPrefix(ref, externalRefPrefix)
	if !ok {
		return 0, fmt.Errorf("external reference %q has no order prefix", ref)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("external reference %q has no valid order id", ref)
	}
	return id, nil
}
