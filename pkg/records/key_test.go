package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name                    string
		market, category, brand string
		want                    Key
	}{
		{
			name:   "uppercases and trims",
			market: " ksa ", category: "Oral Health Care", brand: "sensodyne",
			want: Key{Market: "KSA", Category: "ORAL HEALTH CARE", Brand: "SENSODYNE"},
		},
		{
			name:   "brand spaces and hyphens collapse",
			market: "Gulf", category: "OHC", brand: "Poli-Grip",
			want: Key{Market: "GULF", Category: "OHC", Brand: "POLIGRIP"},
		},
		{
			name:   "brand with internal space",
			market: "Gulf", category: "OHC", brand: "Poli Grip",
			want: Key{Market: "GULF", Category: "OHC", Brand: "POLIGRIP"},
		},
		{
			name:   "category keeps internal spaces",
			market: "KSA", category: "Pain Relief", brand: "Panadol",
			want: Key{Market: "KSA", Category: "PAIN RELIEF", Brand: "PANADOL"},
		},
		{
			name: "empty parts stay empty",
			want: Key{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.market, tt.category, tt.brand))
		})
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	k := NormalizeKey("  ksa", "oral care", "Poli-Grip ")
	again := NormalizeKey(k.Market, k.Category, k.Brand)
	assert.Equal(t, k, again, "normalizing a normalized key must be a no-op")
}

func TestKeyLess(t *testing.T) {
	a := Key{Market: "GULF", Category: "OHC", Brand: "SENSODYNE"}
	b := Key{Market: "KSA", Category: "OHC", Brand: "AQUAFRESH"}
	c := Key{Market: "KSA", Category: "OHC", Brand: "SENSODYNE"}

	assert.True(t, a.Less(b), "market orders first")
	assert.True(t, b.Less(c), "brand breaks ties")
	assert.False(t, c.Less(c))
}

func TestKeyString(t *testing.T) {
	k := Key{Market: "KSA", Category: "OHC", Brand: "SENSODYNE"}
	assert.Equal(t, "KSA/OHC/SENSODYNE", k.String())
}
