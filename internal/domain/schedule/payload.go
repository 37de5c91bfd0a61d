package schedule

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	ChangeModeNow   = "now"
	ChangeModeLater = "later"
)

// Spec is the timing block clients send inside a schedule payload.
type Spec struct {
	ChangeMode    string `json:"changeMode"`
	RunAtIso      string `json:"runAtIso"`
	RevertEnabled bool   `json:"revertEnabled"`
	RevertAtIso   string `json:"revertAtIso,omitempty"`
}

// Payload is the stored adjustment document: the timing block, the
// adjustment parameters it was derived from, and the precomputed
// per-variant target prices captured at preview time.
type Payload struct {
	Schedule    Spec     `json:"schedule"`
	ProductIDs  []string `json:"productIds,omitempty"`
	AdjustType  string   `json:"adjustType,omitempty"`
	AmountType  string   `json:"amountType,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	FixedAmount *float64 `json:"fixedAmount,omitempty"`
	Rounding    string   `json:"rounding,omitempty"`
	Items       []Item   `json:"items"`
}

// Item is one precomputed variant price target. Prices are kept in the
// catalog's string form; ids are raw or GID form as received.
type Item struct {
	ProductID string `json:"productId,omitempty"`
	VariantID string `json:"variantId"`
	NewPrice  string `json:"newPrice"`
	OldPrice  string `json:"oldPrice,omitempty"`
}

// UnmarshalJSON normalizes the historical field-name aliases for the
// product id (productId, productGid, pid) and accepts prices and ids as
// either JSON strings or numbers. Everything downstream sees only the
// canonical shape.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	it.ProductID = firstScalar(raw, "productId", "productGid", "pid")
	it.VariantID = firstScalar(raw, "variantId")
	it.NewPrice = firstScalar(raw, "newPrice")
	it.OldPrice = firstScalar(raw, "oldPrice")
	return nil
}

func firstScalar(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s := scalarString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// scalarString renders a JSON string or number as its text form; null and
// non-scalar values become "".
func scalarString(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return ""
	}
	return n.String()
}

// Reversal builds the item list for an auto-revert schedule by swapping
// each item's old and new price. ok is false when any item is missing its
// old price, in which case no revert can be derived.
func (p Payload) Reversal() ([]Item, bool) {
	items := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		if it.OldPrice == "" {
			return nil, false
		}
		items = append(items, Item{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			NewPrice:  it.OldPrice,
			OldPrice:  it.NewPrice,
		})
	}
	return items, len(items) > 0
}
