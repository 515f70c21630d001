package records

import "strings"

// Key is the normalized (market, category, brand) identity used to match
// records across sources. Two records with the same Key describe the same
// business entity.
type Key struct {
	Market   string
	Category string
	Brand    string
}

// NormalizeKey canonicalizes a raw identity into a matching key. All three
// parts are trimmed and uppercased; the brand additionally has internal
// spaces and hyphens removed so "Poli-Grip" and "Poligrip" collapse to the
// same key. Categories keep internal spaces to preserve multi-word names.
// The function is pure and total: empty or missing parts yield empty strings.
func NormalizeKey(market, category, brand string) Key {
	return Key{
		Market:   clean(market),
		Category: clean(category),
		Brand:    strings.NewReplacer(" ", "", "-", "").Replace(clean(brand)),
	}
}

func clean(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// String renders the key for logs and report samples.
func (k Key) String() string {
	return k.Market + "/" + k.Category + "/" + k.Brand
}

// Less orders keys by market, then category, then brand.
func (k Key) Less(other Key) bool {
	if k.Market != other.Market {
		return k.Market < other.Market
	}
	if k.Category != other.Category {
		return k.Category < other.Category
	}
	return k.Brand < other.Brand
}
